// Package jitter считает задержки повторов с экспоненциальным ростом и случайной добавкой.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultFactor — доля задержки, добавляемая случайно (до 50%).
const DefaultFactor = 0.5

// Backoff описывает политику задержек между попытками.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
	// rnd возвращает число в [0, 1). Подменяется в тестах.
	rnd func() float64
}

func NewBackoff(base, max time.Duration) *Backoff {
	return &Backoff{
		Base:   base,
		Max:    max,
		Factor: DefaultFactor,
		rnd:    rand.Float64,
	}
}

// Delay возвращает задержку перед попыткой attempt (нумерация с нуля).
// Результат лежит в [d, d*(1+Factor)], где d = min(Base*2^attempt, Max).
func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt && d < b.Max; i++ {
		d *= 2
	}
	if d > b.Max {
		d = b.Max
	}

	rnd := b.rnd
	if rnd == nil {
		rnd = rand.Float64
	}

	return d + time.Duration(rnd()*b.Factor*float64(d))
}
