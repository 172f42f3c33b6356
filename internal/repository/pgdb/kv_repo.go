package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// KVRepo реализует key/value хранилище поверх таблицы kv_store в PostgreSQL.
type KVRepo struct {
	pool *pgxpool.Pool
}

func NewKVRepo(pool *pgxpool.Pool) *KVRepo {
	return &KVRepo{pool: pool}
}

// Get возвращает значение ключа или (nil, nil), если ключа нет.
func (k *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if value == nil {
		value = []byte{}
	}

	return value, nil
}

// Set идемпотентно записывает значение ключа.
// Строка обновляется только если значение действительно изменилось.
func (k *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		WHERE kv_store.value IS DISTINCT FROM EXCLUDED.value
	`

	if _, err := k.pool.Exec(ctx, query, key, value); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
