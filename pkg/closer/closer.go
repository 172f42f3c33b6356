package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Func освобождает ресурс.
type Func func(ctx context.Context) error

// Closer хранит функции закрытия ресурсов и вызывает их в порядке LIFO.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	names []string
	funcs []Func
}

func NewCloser() *Closer {
	return &Closer{}
}

// Add регистрирует функцию закрытия. name попадает в текст ошибки.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.funcs = append(c.funcs, f)
}

// Close закрывает ресурсы в обратном порядке регистрации.
// Если ctx истёк, оставшиеся ресурсы не закрываются и попадают в ошибку.
// Повторные вызовы ничего не делают.
func (c *Closer) Close(ctx context.Context) error {
	var errs []error
	c.once.Do(func() {
		c.mu.Lock()
		names, funcs := c.names, c.funcs
		c.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: not closed: %w", names[i], err))
				continue
			}

			if err := funcs[i](ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", names[i], err))
			}
		}
	})

	return errors.Join(errs...)
}
