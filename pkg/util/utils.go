package util

import (
	"github.com/go-ble/ble"
)

// UuidEqualStr compares a ble uuid with its dashed string form
func UuidEqualStr(u ble.UUID, s string) bool {
	p, err := ble.Parse(s)
	if err != nil {
		return false
	}
	return u.Equal(p)
}
