package microbit

import (
	"strings"
)

const (
	// PatternSize is the width and height of the micro:bit LED matrix
	PatternSize = 5
)

// Pattern is the pairing pattern shown on the LED matrix, row-major, true meaning lit
type Pattern [PatternSize][PatternSize]bool

// PairPattern builds the pattern a board shows while in pairing mode.
// Row i of the unrotated grid lights the first index+1 LEDs, where index is the
// codebook digit of name[i]; the grid is then rotated so it reads the same way
// as the board display.
func PairPattern(name FriendlyName) (Pattern, error) {
	var p Pattern
	if err := name.Validate(); err != nil {
		return p, err
	}
	var grid Pattern
	for i := 0; i < NameLength; i++ {
		index := indexOf(i, name[i])
		for j := 0; j <= index; j++ {
			grid[i][j] = true
		}
	}
	for r := 0; r < PatternSize; r++ {
		for c := 0; c < PatternSize; c++ {
			p[r][c] = grid[c][PatternSize-1-r]
		}
	}
	return p, nil
}

// PairPatternOf is PairPattern for a name that may not be known yet (no device, no pattern)
func PairPatternOf(name *FriendlyName) (*Pattern, error) {
	if name == nil {
		return nil, nil
	}
	p, err := PairPattern(*name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LitCount returns the number of lit LEDs
func (p Pattern) LitCount() int {
	n := 0
	for _, row := range p {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// LEDMatrixState encodes the pattern for the LED Matrix State characteristic:
// one byte per row, column 0 in bit 4 through column 4 in bit 0.
func (p Pattern) LEDMatrixState() []byte {
	state := make([]byte, PatternSize)
	for r, row := range p {
		for c, on := range row {
			if on {
				state[r] |= 1 << uint(PatternSize-1-c)
			}
		}
	}
	return state
}

func (p Pattern) String() string {
	var sb strings.Builder
	for r, row := range p {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
