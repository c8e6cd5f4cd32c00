package challenge

import (
	"math/rand"

	"github.com/younwookim/runway/internal/domain/entity"
)

// FallingItem is one object dropping toward the player.
type FallingItem struct {
	X, Y   float64
	Size   float64
	Caught bool
	Missed bool
}

// CatchConfig tunes a falling-catch round.
type CatchConfig struct {
	Duration      float64 // seconds of spawning
	SpawnInterval float64
	FallSpeed     float64 // percent/sec
	ItemSize      float64
	MinX, MaxX    float64
	GroundY       float64
}

// DefaultCatchConfig matches the [5,95] movement clamp of the world.
func DefaultCatchConfig(groundY float64) CatchConfig {
	return CatchConfig{
		Duration:      10,
		SpawnInterval: 0.8,
		FallSpeed:     35,
		ItemSize:      3,
		MinX:          5,
		MaxX:          95,
		GroundY:       groundY,
	}
}

// FallingCatch drops items at random x; the player catches them by
// overlapping them. The round ends once spawning stops and every item has
// landed or been caught.
type FallingCatch struct {
	cfg     CatchConfig
	rng     *rand.Rand
	items   []*FallingItem
	elapsed float64
	spawnT  float64
	spawned int
	caught  int
	done    bool

	// PlayerPos returns the player's feet position each update
	PlayerPos func() (x, y float64)
	// OnComplete fires once with the final score
	OnComplete func(score int)
}

// NewFallingCatch creates a falling-catch round.
func NewFallingCatch(cfg CatchConfig, rng *rand.Rand, playerPos func() (float64, float64)) *FallingCatch {
	return &FallingCatch{
		cfg:       cfg,
		rng:       rng,
		PlayerPos: playerPos,
	}
}

// Update spawns, moves and resolves items.
func (f *FallingCatch) Update(dt float64) {
	if f.done {
		return
	}
	f.elapsed += dt

	if f.elapsed <= f.cfg.Duration {
		f.spawnT += dt
		for f.spawnT >= f.cfg.SpawnInterval {
			f.spawnT -= f.cfg.SpawnInterval
			f.spawn()
		}
	}

	px, py := f.PlayerPos()
	active := 0
	for _, it := range f.items {
		if it.Caught || it.Missed {
			continue
		}
		it.Y += f.cfg.FallSpeed * dt
		// Y is the item's bottom edge
		if entity.CheckCollision(px, py, it.X, it.Y, it.Size, it.Size) {
			it.Caught = true
			f.caught++
			continue
		}
		if it.Y >= f.cfg.GroundY {
			it.Missed = true
			continue
		}
		active++
	}

	if f.elapsed > f.cfg.Duration && active == 0 {
		f.done = true
		if f.OnComplete != nil {
			f.OnComplete(f.Score())
		}
	}
}

func (f *FallingCatch) spawn() {
	x := f.cfg.MinX + f.rng.Float64()*(f.cfg.MaxX-f.cfg.MinX)
	f.items = append(f.items, &FallingItem{X: x, Y: 0, Size: f.cfg.ItemSize})
	f.spawned++
}

// Items returns the items for presentation.
func (f *FallingCatch) Items() []*FallingItem {
	return f.items
}

// Done reports whether the round is over.
func (f *FallingCatch) Done() bool {
	return f.done
}

// Score returns caught items as a percentage of spawned ones.
func (f *FallingCatch) Score() int {
	return percent(f.caught, f.spawned)
}
