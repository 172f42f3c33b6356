package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/jimlawless/whereami"
)

// KVRepo реализует key/value хранилище поверх таблицы kv_store в SQLite.
type KVRepo struct {
	db *sql.DB
}

func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get возвращает значение ключа или (nil, nil), если ключа нет.
func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
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
func (r *KVRepo) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
