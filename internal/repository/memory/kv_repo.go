package memory

import (
	"context"
	"sync"
)

// KVRepo — key/value хранилище в памяти процесса. Данные теряются при перезапуске.
type KVRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVRepo() *KVRepo {
	return &KVRepo{data: make(map[string][]byte)}
}

func (r *KVRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (r *KVRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte{}, value...)
	return nil
}
