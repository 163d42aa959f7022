package util

import (
	"errors"
	"testing"

	"gotest.tools/assert"
)

func TestCatchErrsPassesThrough(t *testing.T) {
	expected := errors.New("boom")
	assert.Equal(t, CatchErrs(func() error { return expected }), expected)
	assert.NilError(t, CatchErrs(func() error { return nil }))
}

func TestCatchErrsRecoversError(t *testing.T) {
	err := CatchErrs(func() error { panic(errors.New("usb gone")) })
	assert.ErrorContains(t, err, "recovered panic: usb gone")
}

func TestCatchErrsRecoversValue(t *testing.T) {
	err := CatchErrs(func() error { panic(42) })
	assert.ErrorContains(t, err, "recovered panic: 42")
}

func TestRetry(t *testing.T) {
	calls := 0
	retried := []int{}
	err := Retry(3, func(attempt int) error {
		calls++
		if attempt < 3 {
			return errors.New("not yet")
		}
		return nil
	}, func(attempt int, _ error) { retried = append(retried, attempt) })
	assert.NilError(t, err)
	assert.Equal(t, calls, 3)
	assert.DeepEqual(t, retried, []int{1, 2})
}

func TestRetryExhausted(t *testing.T) {
	calls := 0
	err := Retry(2, func(int) error {
		calls++
		return errors.New("still failing")
	}, nil)
	assert.ErrorContains(t, err, "Exceeded attempts issue: still failing")
	assert.Equal(t, calls, 2)
}
