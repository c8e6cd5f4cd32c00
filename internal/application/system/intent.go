package system

// Key is a logical input key, independent of the host's keyboard API
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// direction returns -1 for left, +1 for right, 0 otherwise
func (k Key) direction() float64 {
	switch k {
	case KeyLeft:
		return -1
	case KeyRight:
		return 1
	default:
		return 0
	}
}

// Intent is a discrete input event delivered to the world
type Intent interface {
	isIntent()
}

// KeyDownIntent reports a key press. Hosts may repeat it while held.
type KeyDownIntent struct {
	Key Key
}

func (KeyDownIntent) isIntent() {}

// KeyUpIntent reports a key release
type KeyUpIntent struct {
	Key Key
}

func (KeyUpIntent) isIntent() {}
