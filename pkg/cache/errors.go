package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrCacheMiss reports that a key holds no usable entry.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNetwork reports that a remote backend could not be reached.
	ErrNetwork = errors.New("network error")
)

// RetryableError marks a transient failure. Its message is that of Err.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether any error in err's chain was marked by Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

const retryAttempts = 3

// retryDelay is the pause after the first failure. Each later pause doubles.
var retryDelay = time.Second

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// by Retryable, or retryAttempts calls have failed. Cancelling ctx during a
// pause returns ctx.Err().
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait *= 2
	}
}
