package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/foodie-cart/pkg/clients"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// KVRepo реализует key/value хранилище поверх Redis. Ключи хранятся без TTL.
type KVRepo struct {
	client *clients.RedisClient
}

func NewKVRepo(client *clients.RedisClient) *KVRepo {
	return &KVRepo{client: client}
}

// Get возвращает значение ключа или (nil, nil), если ключа нет.
func (k *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := k.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (k *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
