package service

import (
	"context"
	"fmt"
)

// RetryPolicy задаёт число попыток подобрать уникальный ключ.
// MaxAttempts == 0 означает попытки без ограничения.
type RetryPolicy struct {
	MaxAttempts int
}

// Unbounded сообщает, что число попыток не ограничено
func (p RetryPolicy) Unbounded() bool {
	return p.MaxAttempts <= 0
}

// Retry вызывает attempt, пока тот возвращает ошибку, для которой retryable истинно.
// Любая другая ошибка возвращается сразу. Между попытками проверяется ctx.
func Retry[T any](ctx context.Context, policy RetryPolicy, attempt func(ctx context.Context) (T, error), retryable func(error) bool) (T, error) {
	var zero T

	for n := 1; policy.Unbounded() || n <= policy.MaxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("retry interrupted after %d attempts: %w", n-1, err)
		}

		result, err := attempt(ctx)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return zero, err
		}
	}

	return zero, fmt.Errorf("gave up after %d attempts: %w", policy.MaxAttempts, ErrMaxRetriesExceeded)
}
