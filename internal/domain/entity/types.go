package entity

import "github.com/younwookim/runway/internal/domain/story"

// EntityID is the stable identifier scene definitions give their entities
type EntityID string

// Obstacle is a solid box standing on the ground at its X
type Obstacle struct {
	ID     EntityID
	Type   string // visuals only
	X      float64
	Width  float64
	Height float64
}

// GroundSegment asserts a ground height over [Start, End]
type GroundSegment struct {
	Start   float64
	End     float64
	GroundY float64
}

// Contains reports whether x lies within the segment (inclusive)
func (s GroundSegment) Contains(x float64) bool {
	return x >= s.Start && x <= s.End
}

// GroundHole is an X interval with no ground
type GroundHole struct {
	Start float64
	End   float64
}

// Contains reports whether x is strictly inside the hole, so standing on the
// lip does not count as falling in.
func (h GroundHole) Contains(x float64) bool {
	return x > h.Start && x < h.End
}

// Collectible is a pickup that applies resource changes once
type Collectible struct {
	ID      EntityID
	Kind    string
	X, Y    float64
	Width   float64
	Height  float64
	Effects story.Changes
}

// ChallengeKind selects the mini-game a gate starts
type ChallengeKind int

const (
	ChallengeNone ChallengeKind = iota
	ChallengeQuickTime
	ChallengeFallingCatch
)

// String returns the string representation of the challenge kind
func (k ChallengeKind) String() string {
	switch k {
	case ChallengeQuickTime:
		return "QuickTime"
	case ChallengeFallingCatch:
		return "FallingCatch"
	default:
		return "None"
	}
}

// Scene is the full geometry of one level, supplied whole on scene change
type Scene struct {
	ID             string
	Name           string
	GroundY        float64
	LevelWidth     float64
	PlayerStartX   float64
	Obstacles      []Obstacle
	Enemies        []EnemyDefinition
	Platforms      []PlatformDefinition
	GroundHoles    []GroundHole
	GroundSegments []GroundSegment
	Collectibles   []Collectible

	// Triggers; a value <= 0 disables the trigger
	ChallengeGateX float64
	Challenge      ChallengeKind
	DecisionX      float64
}

// InHole reports whether x is over any hole
func (s *Scene) InHole(x float64) bool {
	for _, h := range s.GroundHoles {
		if h.Contains(x) {
			return true
		}
	}
	return false
}

// GroundAt returns the ground height at x
func (s *Scene) GroundAt(x float64) float64 {
	return GroundYAt(x, s.GroundY, s.GroundSegments)
}

// IsSingleScreen reports whether the level fits in one viewport
func (s *Scene) IsSingleScreen(viewSpan float64) bool {
	return s.LevelWidth <= viewSpan
}
