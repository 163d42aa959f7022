package microbit

const (
	// NameLength is the number of characters in a micro:bit friendly name
	NameLength = 5
	// NameCodeLetters is the number of letters available at each name position
	NameCodeLetters = 5
)

// codebook holds the letters used at each friendly name position, indexed [position][digit].
// The firmware (MicroBitDevice.cpp in codal-microbit-v2) uses the same table.
var codebook = [NameLength][NameCodeLetters]byte{
	{'z', 'v', 'g', 'p', 't'},
	{'u', 'o', 'i', 'e', 'a'},
	{'z', 'v', 'g', 'p', 't'},
	{'u', 'o', 'i', 'e', 'a'},
	{'z', 'v', 'g', 'p', 't'},
}

func letterAt(position int, digit uint32) byte {
	return codebook[position][digit]
}

// indexOf returns the digit of c at the given name position, or -1.
func indexOf(position int, c byte) int {
	for i, l := range codebook[position] {
		if l == c {
			return i
		}
	}
	return -1
}
