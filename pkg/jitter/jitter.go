// Package jitter — экспоненциальный backoff со случайной добавкой и повтор операций с ним.
// Используется, чтобы дождаться готовности хранилища при старте приложения.
package jitter

import (
	"context"
	"math/rand/v2"
	"time"
)

// DefaultFactor: джиттер до 50% от задержки.
const DefaultFactor = 0.5

// Backoff описывает рост задержки между попытками.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
}

// Delay возвращает задержку перед попыткой attempt (нумерация с нуля).
// Результат находится в диапазоне [d, d*(1+Factor)], где d = min(Base*2^attempt, Max).
func (b Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt && (b.Max <= 0 || d < b.Max); i++ {
		d *= 2
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}

	return d + time.Duration(rand.Float64()*b.Factor*float64(d))
}

// Retry вызывает fn до первого успеха, но не более attempts раз.
// Возвращает последнюю ошибку fn либо ошибку контекста, если он отменён во время ожидания.
func Retry(ctx context.Context, attempts int, b Backoff, fn func(ctx context.Context) error) error {
	var err error

	attempts = max(attempts, 1)
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		timer := time.NewTimer(b.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return err
}
