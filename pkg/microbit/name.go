package microbit

import (
	"github.com/pkg/errors"
)

// FriendlyName is the five letter name a micro:bit derives from its serial number
// and shows in its Bluetooth advertisement (e.g. "BBC micro:bit [zegot]").
type FriendlyName string

// FriendlyNameOf derives the friendly name from the most significant word of the device id.
// Every serial has a name.
func FriendlyNameOf(serial uint32) FriendlyName {
	divisor := uint32(NameCodeLetters)
	lastDivisor := uint32(1)
	v := serial
	name := make([]byte, NameLength)
	for i := 0; i < NameLength; i++ {
		digit := (v % divisor) / lastDivisor
		// the firmware subtracts the raw digit, not digit*lastDivisor; names must match the board
		v -= digit
		divisor *= NameCodeLetters
		lastDivisor *= NameCodeLetters
		name[NameLength-1-i] = letterAt(i, digit)
	}
	return FriendlyName(name)
}

// Validate checks the name could have been produced by FriendlyNameOf
func (n FriendlyName) Validate() error {
	if len(n) != NameLength {
		return errors.Wrapf(ErrInvalidNameLength, "name %q has %d characters, want %d", string(n), len(n), NameLength)
	}
	for i := 0; i < NameLength; i++ {
		if indexOf(i, n[i]) < 0 {
			return errors.Wrapf(ErrInvalidNameCharacter, "name %q: %q not allowed at position %d", string(n), n[i], i)
		}
	}
	return nil
}

func (n FriendlyName) String() string { return string(n) }
