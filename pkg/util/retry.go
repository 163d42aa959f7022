package util

import (
	"github.com/pkg/errors"
)

// Retry calls fn until it succeeds or maxAttempts calls have failed.
// onRetry, if set, is told about every failed attempt that will be retried.
func Retry(maxAttempts int, fn func(attempt int) error, onRetry func(attempt int, err error)) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if attempt < maxAttempts && onRetry != nil {
			onRetry(attempt, err)
		}
	}
	return errors.Wrap(err, "Exceeded attempts issue")
}
