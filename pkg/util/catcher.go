package util

import (
	"github.com/pkg/errors"
)

// CatchErrs runs fn and turns a panic inside it into an error.
// Collaborators (probe transports, the ble stack) are allowed to panic on a lost device.
func CatchErrs(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrap(e, "recovered panic")
				return
			}
			err = errors.Errorf("recovered panic: %v", r)
		}
	}()
	return fn()
}
