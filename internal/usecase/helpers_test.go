package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/repository/kvstore"
	"github.com/DRSN-tech/foodie-cart/internal/repository/memory"
	"github.com/DRSN-tech/foodie-cart/internal/repository/static"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
)

var errBackendDown = errors.New("backend down")

// flakyBackend позволяет выключить запись по ключу.
type flakyBackend struct {
	*memory.KVRepo

	mu        sync.Mutex
	failWrite map[string]bool // ключ без namespace
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{KVRepo: memory.NewKVRepo(), failWrite: make(map[string]bool)}
}

func (b *flakyBackend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	fail := b.failWrite[key]
	b.mu.Unlock()
	if fail {
		return errBackendDown
	}

	return b.KVRepo.Set(ctx, key, value)
}

func (b *flakyBackend) failWrites(key string, fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWrite[key] = fail
}

type fixture struct {
	backend *flakyBackend
	store   *kvstore.Store
	catalog *static.CatalogRepo
	cart    *CartUseCase
	orders  *OrderUseCase
	contact *ContactUseCase
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend := newFlakyBackend()
	return newFixtureWithBackend(t, backend)
}

func newFixtureWithBackend(t *testing.T, backend *flakyBackend) *fixture {
	t.Helper()

	log := logger.NewNopLogger()
	store := kvstore.NewStore(backend, "", log)
	catalog := static.NewDefaultCatalogRepo()
	cart := NewCartUC(context.Background(), catalog, store, log)

	orders := NewOrderUC(cart, store, nil, nil, log)
	orders.now = func() time.Time { return fixedNow }

	contact := NewContactUC(store, log)
	contact.now = func() time.Time { return fixedNow }

	return &fixture{
		backend: backend,
		store:   store,
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		contact: contact,
	}
}
