package clients

import (
	"context"
	"time"

	"github.com/DRSN-tech/foodie-cart/internal/cfg"
	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/jitter"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const redisClientName = "foodie-cart"

type RedisClient struct {
	Client  *r.Client
	backoff *jitter.Backoff
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		ClientName:   redisClientName,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &RedisClient{
		Client:  client,
		backoff: jitter.NewBackoff(100*time.Millisecond, 2*time.Second),
	}
}

// Ping проверяет соединение, повторяя попытки до истечения ctx:
// при совместном старте контейнеров Redis поднимается не сразу.
func (c *RedisClient) Ping(ctx context.Context) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = c.Client.Ping(ctx).Err(); err == nil {
			return nil
		}

		select {
		case <-time.After(c.backoff.Delay(attempt)):
		case <-ctx.Done():
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}
}

func (c *RedisClient) Close(_ context.Context) error {
	return c.Client.Close()
}
