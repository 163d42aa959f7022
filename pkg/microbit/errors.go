package microbit

import "github.com/pkg/errors"

var (
	// ErrInvalidNameLength is returned when a friendly name is not NameLength characters long
	ErrInvalidNameLength = errors.New("invalid friendly name length")
	// ErrInvalidNameCharacter is returned when a friendly name holds a letter outside its position's codebook row
	ErrInvalidNameCharacter = errors.New("invalid friendly name character")
)
