package entity

// Facing is the direction the player sprite looks
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// AnimationState is presentation-only and derived from motion
type AnimationState int

const (
	AnimIdle AnimationState = iota
	AnimWalk
	AnimJump
	AnimHurt
)

// String returns the string representation of the animation state
func (a AnimationState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// Player is the single authoritative position/motion record.
// X is the horizontal center and Y the feet, both in percent of the viewport.
type Player struct {
	X, Y        float64
	VelocityY   float64 // percent/sec, negative = up
	IsGrounded  bool
	KnockbackVX float64

	// OnPlatformID is a weak reference resolved by lookup each frame
	OnPlatformID EntityID

	// InvincibleUntil is a clock deadline in seconds
	InvincibleUntil float64
	FallingInHole   bool

	Facing    Facing
	Animation AnimationState
}

// NewPlayer creates a grounded player standing at (x, groundY)
func NewPlayer(x, groundY float64) *Player {
	p := &Player{}
	p.Reset(x, groundY)
	return p
}

// Reset puts the player back on the ground at x with no motion
func (p *Player) Reset(x, groundY float64) {
	*p = Player{
		X:          x,
		Y:          groundY,
		IsGrounded: true,
		Facing:     FacingRight,
		Animation:  AnimIdle,
	}
}

// IsInvincible reports whether a hit at time now would be ignored
func (p *Player) IsInvincible(now float64) bool {
	return now < p.InvincibleUntil
}

// OnPlatform reports whether a platform is currently supporting the player
func (p *Player) OnPlatform() bool {
	return p.IsGrounded && p.OnPlatformID != ""
}

// FaceToward updates Facing from a horizontal direction; zero keeps it
func (p *Player) FaceToward(dir float64) {
	if dir > 0 {
		p.Facing = FacingRight
	} else if dir < 0 {
		p.Facing = FacingLeft
	}
}
