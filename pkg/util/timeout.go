package util

import (
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout is returned by Timeout when fn does not finish in time
var ErrTimeout = errors.New("Timeout")

// Timeout is a utility method used to timeout function calls after the specified interval.
// fn keeps running in the background after a timeout; its result is discarded.
func Timeout(fn func() error, duration time.Duration) error {
	_, err := TimeoutDone(fn, duration)
	return err
}

// TimeoutDone is Timeout that also returns a channel closed once fn has returned,
// so a caller can wait out an abandoned call before starting another.
func TimeoutDone(fn func() error, duration time.Duration) (<-chan struct{}, error) {
	ch := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ch <- CatchErrs(fn)
	}()
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case err := <-ch:
		return done, err
	case <-timer.C:
		return done, ErrTimeout
	}
}

// WaitDone waits up to duration for done to close and reports whether it did
func WaitDone(done <-chan struct{}, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
