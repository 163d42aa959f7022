package session

// Status is an enum for the attachment state of a session
type Status int

const (
	// Detached indicates no micro:bit is attached
	Detached Status = iota
	// Attached indicates a micro:bit is attached and its identity is cached
	Attached
)

var statusNames = []string{"Detached", "Attached"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Unknown"
	}
	return statusNames[s]
}
