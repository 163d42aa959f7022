package util

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestTimeout(t *testing.T) {
	x := time.Millisecond * 50
	err := Timeout(func() error {
		time.Sleep(x * 4)
		return errors.New("should not get called")
	}, x)
	assert.ErrorContains(t, err, "Timeout")
	assert.Equal(t, err, ErrTimeout)
}

func TestTimeoutReturnsResult(t *testing.T) {
	expected := errors.New("register read failed")
	err := Timeout(func() error { return expected }, time.Second)
	assert.Equal(t, err, expected)
	assert.NilError(t, Timeout(func() error { return nil }, time.Second))
}

func TestTimeoutCatchesPanic(t *testing.T) {
	err := Timeout(func() error { panic("probe disconnected") }, time.Second)
	assert.ErrorContains(t, err, "probe disconnected")
}

func TestTimeoutDone(t *testing.T) {
	done, err := TimeoutDone(func() error {
		time.Sleep(100 * time.Millisecond)
		return nil
	}, 10*time.Millisecond)
	assert.Equal(t, err, ErrTimeout)
	assert.Check(t, !WaitDone(done, time.Millisecond))
	assert.Check(t, WaitDone(done, time.Second))
}

func TestTimeoutDoneClosedOnReturn(t *testing.T) {
	done, err := TimeoutDone(func() error { return nil }, time.Second)
	assert.NilError(t, err)
	assert.Check(t, WaitDone(done, time.Second))
}
