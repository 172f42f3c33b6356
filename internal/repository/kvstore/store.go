package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Backend — сырое key/value хранилище. Get возвращает (nil, nil) для отсутствующего ключа.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store хранит JSON-значения под именованными ключами поверх Backend.
// Ошибки чтения и декодирования не возвращаются: значение считается отсутствующим.
type Store struct {
	backend   Backend
	namespace string
	logger    logger.Logger
}

func NewStore(backend Backend, namespace string, logger logger.Logger) *Store {
	return &Store{
		backend:   backend,
		namespace: namespace,
		logger:    logger,
	}
}

// Read декодирует значение key в dst. Возвращает false, если ключ не записывался,
// бэкенд вернул ошибку или значение не декодируется.
func (s *Store) Read(ctx context.Context, key string, dst any) bool {
	data, err := s.backend.Get(ctx, s.key(key))
	if err != nil {
		s.logger.Warnf("store read failed, key=%s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return false
	}

	if data == nil {
		return false // ключ не записывался
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warnf("store value is not decodable, treated as absent, key=%s: %v", key, err)
		return false
	}

	return true
}

// Write сериализует value и сохраняет его. Ошибка оборачивает e.ErrStorageWrite.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w: key=%s: %w", whereami.WhereAmI(), e.ErrStorageWrite, key, err)
	}

	if err := s.backend.Set(ctx, s.key(key), data); err != nil {
		return fmt.Errorf("%s: %w: key=%s: %w", whereami.WhereAmI(), e.ErrStorageWrite, key, err)
	}

	return nil
}

// key добавляет пространство имён к ключу
func (s *Store) key(key string) string {
	if s.namespace == "" {
		return key
	}

	return s.namespace + ":" + key
}
