package entity

// MoveAxis selects the oscillation axis of a moving platform
type MoveAxis string

const (
	AxisNone MoveAxis = ""
	AxisX    MoveAxis = "x"
	AxisY    MoveAxis = "y"
)

// PlatformDefinition is a one-way ledge; Y is its top surface
type PlatformDefinition struct {
	ID        EntityID
	Type      string
	X         float64 // center
	Y         float64 // top
	Width     float64
	Height    float64
	MoveAxis  MoveAxis
	MoveRange float64
	MoveSpeed float64 // cycles per second
}

// IsMoving reports whether the platform oscillates
func (p PlatformDefinition) IsMoving() bool {
	return p.MoveAxis != AxisNone && p.MoveRange != 0 && p.MoveSpeed != 0
}

// Platform is a platform resolved for the current frame
type Platform struct {
	PlatformDefinition
	DX, DY float64 // movement since the previous frame
}

// Contains reports whether x is horizontally within the platform
func (p Platform) Contains(x float64) bool {
	half := p.Width / 2
	return x >= p.X-half && x <= p.X+half
}

// Moved reports whether the platform moved since the previous frame
func (p Platform) Moved() bool {
	return p.DX != 0 || p.DY != 0
}
