package boxes

// Flag is the transient per-box marker used to disambiguate the next
// keyboard event on that box.
type Flag uint8

const (
	// FlagReady is the initial state of every box.
	FlagReady Flag = iota
	// FlagReset is set right after an input on the box was rejected. The next
	// composition-key probe on the box treats the key as not-backspace and
	// returns the box to FlagReady.
	FlagReset
)

func (f Flag) String() string {
	switch f {
	case FlagReady:
		return "ready"
	case FlagReset:
		return "reset"
	default:
		return "unknown"
	}
}
