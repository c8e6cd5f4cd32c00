package story

// Resource bounds.
const (
	ResourceMin = 0
	ResourceMax = 100
)

// Resources is the small economy decisions and gameplay events mutate.
type Resources struct {
	Momentum   int `json:"momentum"`
	Money      int `json:"money"`
	Energy     int `json:"energy"`
	Reputation int `json:"reputation"`
}

// Changes is a signed delta applied to Resources.
type Changes struct {
	Momentum   int `json:"momentum,omitempty" yaml:"momentum"`
	Money      int `json:"money,omitempty" yaml:"money"`
	Energy     int `json:"energy,omitempty" yaml:"energy"`
	Reputation int `json:"reputation,omitempty" yaml:"reputation"`
}

// IsZero reports whether applying c changes nothing.
func (c Changes) IsZero() bool {
	return c == Changes{}
}

// Ending identifies how a run finished.
type Ending string

const (
	EndingNone      Ending = ""
	EndingBurnout   Ending = "burnout"
	EndingBankrupt  Ending = "bankrupt"
	EndingDisgraced Ending = "disgraced"
	EndingExit      Ending = "exit"
)

// IsVictory reports whether the ending is a win.
func (e Ending) IsVictory() bool {
	return e == EndingExit
}

// Penalties applied by the session for gameplay events.
var (
	FallPenalty      = Changes{Energy: -10}
	CollisionPenalty = Changes{Energy: -5, Reputation: -2}
)

// StartingResources are the values a new run begins with.
func StartingResources() Resources {
	return Resources{Momentum: 10, Money: 50, Energy: 80, Reputation: 50}
}

// ApplyResourceChanges adds c to r and clamps every field to
// [ResourceMin, ResourceMax].
func ApplyResourceChanges(r Resources, c Changes) Resources {
	return Resources{
		Momentum:   clamp(r.Momentum + c.Momentum),
		Money:      clamp(r.Money + c.Money),
		Energy:     clamp(r.Energy + c.Energy),
		Reputation: clamp(r.Reputation + c.Reputation),
	}
}

// CheckGameEnd reports whether r ends the run. Losses are checked before the
// win so a final move that both maxes momentum and drains energy still loses.
func CheckGameEnd(r Resources) (Ending, bool) {
	switch {
	case r.Energy <= ResourceMin:
		return EndingBurnout, true
	case r.Money <= ResourceMin:
		return EndingBankrupt, true
	case r.Reputation <= ResourceMin:
		return EndingDisgraced, true
	case r.Momentum >= ResourceMax:
		return EndingExit, true
	}
	return EndingNone, false
}

func clamp(v int) int {
	if v < ResourceMin {
		return ResourceMin
	}
	if v > ResourceMax {
		return ResourceMax
	}
	return v
}
