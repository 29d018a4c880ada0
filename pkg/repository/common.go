package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

// Is matches any criticalError, so repeater can stop on it regardless of the wrapped error
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withRetry runs a write with backoff, retrying only on lock errors.
// fn is expected to pass its errors through writeErr, critical errors stop the retries.
func withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, fn, &criticalError{})
}

// writeErr keeps lock errors retryable and marks the rest as critical
func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isLockError(err) {
		return err // repeater will retry this
	}
	return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
}
