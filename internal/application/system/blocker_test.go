package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/runway/internal/domain/entity"
)

func createTestBlocker(obstacles ...entity.Obstacle) *ObstacleBlocker {
	b := NewObstacleBlocker(1.5)
	b.SetSceneGeometry(obstacles, 80, nil)
	return b
}

// crate at x=50, 4 wide, 5 tall: blocked footprint is (46.8, 53.2)
func testCrate() entity.Obstacle {
	return entity.Obstacle{ID: "crate", X: 50, Width: 4, Height: 5}
}

func TestObstacleBlocker_PushToApproachSide(t *testing.T) {
	b := createTestBlocker(testCrate())

	tests := []struct {
		name      string
		candidate float64
		previous  float64
		want      float64
	}{
		{"free move left of crate", 44, 43, 44},
		{"from left into crate", 49, 45, 46.8},
		{"from right into crate", 51, 55, 53.2},
		{"touching left edge is free", 46.8, 45, 46.8},
		{"touching right edge is free", 53.2, 55, 53.2},
		{"unknown origin left of center", 49, 49, 46.8},
		{"unknown origin right of center", 51, 51, 53.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ResolveBlockedX(tt.candidate, 80, tt.previous)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestObstacleBlocker_AirborneAboveTop(t *testing.T) {
	b := createTestBlocker(testCrate())

	// crate top is at 75
	assert.Equal(t, 50.0, b.ResolveBlockedX(50, 75, 45))
	assert.Equal(t, 50.0, b.ResolveBlockedX(50, 70, 45))
	assert.InDelta(t, 46.8, b.ResolveBlockedX(50, 76, 45), 1e-9)
}

func TestObstacleBlocker_UsesLocalGroundForTop(t *testing.T) {
	b := NewObstacleBlocker(1.5)
	b.SetSceneGeometry(
		[]entity.Obstacle{testCrate()},
		80,
		[]entity.GroundSegment{{Start: 40, End: 60, GroundY: 70}},
	)

	// on raised ground the crate top is 65, so feet at 68 still hit it
	assert.InDelta(t, 46.8, b.ResolveBlockedX(50, 68, 45), 1e-9)
	assert.Equal(t, 50.0, b.ResolveBlockedX(50, 64, 45))
}

func TestObstacleBlocker_Tunneling(t *testing.T) {
	b := createTestBlocker(testCrate())

	t.Run("left to right jump over footprint", func(t *testing.T) {
		assert.InDelta(t, 46.8, b.ResolveBlockedX(60, 80, 40), 1e-9)
	})

	t.Run("right to left jump over footprint", func(t *testing.T) {
		assert.InDelta(t, 53.2, b.ResolveBlockedX(40, 80, 60), 1e-9)
	})

	t.Run("never ends on the far side", func(t *testing.T) {
		left, right := 46.8, 53.2
		for prev := 30.0; prev <= 70; prev += 0.7 {
			for d := -25.0; d <= 25; d += 0.9 {
				got := b.ResolveBlockedX(prev+d, 80, prev)
				if prev <= left {
					assert.LessOrEqual(t, got, left+1e-9, "prev=%v d=%v", prev, d)
				}
				if prev >= right {
					assert.GreaterOrEqual(t, got, right-1e-9, "prev=%v d=%v", prev, d)
				}
			}
		}
	})
}

func TestObstacleBlocker_GreedyOverMultipleObstacles(t *testing.T) {
	b := createTestBlocker(
		testCrate(),
		entity.Obstacle{ID: "wall", X: 44, Width: 2, Height: 10},
	)

	// the crate pushes back to 46.8, just clear of the wall footprint (41.8, 46.2)
	assert.InDelta(t, 46.8, b.ResolveBlockedX(49, 80, 47), 1e-9)

	// approaching the wall from the left stops at its edge before the crate
	assert.InDelta(t, 41.8, b.ResolveBlockedX(49, 80, 40), 1e-9)
}

func TestObstacleBlocker_LedgeGuard(t *testing.T) {
	b := NewObstacleBlocker(1.5)
	b.SetSceneGeometry(nil, 50, []entity.GroundSegment{
		{Start: 0, End: 50, GroundY: 50},
		{Start: 50, End: 100, GroundY: 40},
	})

	t.Run("walking up a 10 unit rise is blocked", func(t *testing.T) {
		assert.Equal(t, 40.0, b.ResolveBlockedX(60, 50, 40))
	})

	t.Run("airborne crossing is allowed", func(t *testing.T) {
		assert.Equal(t, 60.0, b.ResolveBlockedX(60, 38, 40))
	})

	t.Run("walking down is allowed", func(t *testing.T) {
		assert.Equal(t, 40.0, b.ResolveBlockedX(40, 40, 60))
	})

	t.Run("small rise is climbable", func(t *testing.T) {
		small := NewObstacleBlocker(1.5)
		small.SetSceneGeometry(nil, 50, []entity.GroundSegment{
			{Start: 0, End: 50, GroundY: 50},
			{Start: 50, End: 100, GroundY: 49},
		})
		assert.Equal(t, 60.0, small.ResolveBlockedX(60, 50, 40))
	})
}

func TestObstacleBlocker_NoGeometry(t *testing.T) {
	b := NewObstacleBlocker(1.5)
	assert.Equal(t, 33.0, b.ResolveBlockedX(33, 80, 10))
}
