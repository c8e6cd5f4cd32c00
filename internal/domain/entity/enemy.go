package entity

// EnemyDefinition is the static layout of an enemy in a scene
type EnemyDefinition struct {
	ID          EntityID
	Type        string
	X           float64
	Y           float64 // feet; 0 means stand on local ground
	Width       float64
	Height      float64
	Speed       float64 // percent/sec
	PatrolStart float64
	PatrolEnd   float64
	FacingRight bool
}

// Enemy is the live, semi-dynamic state of a patrolling enemy
type Enemy struct {
	EnemyDefinition
	Direction float64 // +1 right, -1 left
}

// NewEnemy creates a live enemy from its definition. Patrol bounds are
// normalised so PatrolStart <= PatrolEnd and X starts inside them.
func NewEnemy(def EnemyDefinition) *Enemy {
	if def.PatrolStart > def.PatrolEnd {
		def.PatrolStart, def.PatrolEnd = def.PatrolEnd, def.PatrolStart
	}
	if def.X < def.PatrolStart {
		def.X = def.PatrolStart
	}
	if def.X > def.PatrolEnd {
		def.X = def.PatrolEnd
	}

	dir := -1.0
	if def.FacingRight {
		dir = 1
	}
	return &Enemy{EnemyDefinition: def, Direction: dir}
}

// Patrol advances the enemy by dist along its segment, bouncing at the
// bounds. It returns true if the direction reversed.
func (e *Enemy) Patrol(dist float64) bool {
	if e.PatrolEnd <= e.PatrolStart {
		return false
	}

	e.X += e.Direction * dist
	switch {
	case e.X >= e.PatrolEnd:
		e.X = e.PatrolEnd
		if e.Direction > 0 {
			e.Direction = -1
			return true
		}
	case e.X <= e.PatrolStart:
		e.X = e.PatrolStart
		if e.Direction < 0 {
			e.Direction = 1
			return true
		}
	}
	return false
}

// Box returns the enemy hitbox standing at feet y
func (e *Enemy) Box(y float64) Box {
	return Box{X: e.X, Y: y, HalfWidth: e.Width / 2, Height: e.Height}
}
