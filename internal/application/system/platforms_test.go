package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runway/internal/domain/entity"
)

func TestPlatformAnimator_StaticPassthrough(t *testing.T) {
	a := NewPlatformAnimator()
	a.SetPlatforms([]entity.PlatformDefinition{
		{ID: "a", X: 30, Y: 70, Width: 10},
		{ID: "b", X: 60, Y: 65, Width: 8},
	})

	for i := 0; i < 10; i++ {
		got := a.Update(frame)
		require.Len(t, got, 2)
		assert.Equal(t, 30.0, got[0].X)
		assert.Equal(t, 65.0, got[1].Y)
		assert.False(t, got[0].Moved())
		assert.False(t, got[1].Moved())
	}
	assert.Equal(t, 0.0, a.Elapsed(), "static scenes do not run the clock")
}

func TestPlatformAnimator_SinusoidalMotion(t *testing.T) {
	a := NewPlatformAnimator()
	a.SetPlatforms([]entity.PlatformDefinition{
		{ID: "h", X: 50, Y: 70, Width: 10, MoveAxis: entity.AxisX, MoveRange: 10, MoveSpeed: 0.5},
		{ID: "v", X: 20, Y: 60, Width: 10, MoveAxis: entity.AxisY, MoveRange: 4, MoveSpeed: 1},
		{ID: "s", X: 80, Y: 60, Width: 10},
	})

	var got []entity.Platform
	for i := 0; i < 30; i++ {
		got = a.Update(frame)
	}
	elapsed := a.Elapsed()
	require.InDelta(t, 0.5, elapsed, 1e-9)

	assert.InDelta(t, 50+math.Sin(elapsed*0.5*2*math.Pi)*10, got[0].X, 1e-9)
	assert.Equal(t, 70.0, got[0].Y)

	assert.InDelta(t, 60+math.Sin(elapsed*2*math.Pi)*4, got[1].Y, 1e-9)
	assert.Equal(t, 20.0, got[1].X)

	assert.Equal(t, 80.0, got[2].X)
	assert.False(t, got[2].Moved())
}

func TestPlatformAnimator_DeltasSumToDisplacement(t *testing.T) {
	a := NewPlatformAnimator()
	a.SetPlatforms([]entity.PlatformDefinition{
		{ID: "h", X: 50, Y: 70, Width: 10, MoveAxis: entity.AxisX, MoveRange: 10, MoveSpeed: 0.5},
	})

	sum := 0.0
	for i := 0; i < 45; i++ {
		got := a.Update(frame)
		sum += got[0].DX
	}

	p, ok := a.Find("h")
	require.True(t, ok)
	assert.InDelta(t, p.X-50, sum, 1e-9)
}

func TestPlatformAnimator_RestartsOnSceneChange(t *testing.T) {
	defs := []entity.PlatformDefinition{
		{ID: "h", X: 50, Y: 70, Width: 10, MoveAxis: entity.AxisX, MoveRange: 10, MoveSpeed: 0.5},
	}
	a := NewPlatformAnimator()
	a.SetPlatforms(defs)
	for i := 0; i < 20; i++ {
		a.Update(frame)
	}
	require.Greater(t, a.Elapsed(), 0.0)

	a.SetPlatforms(defs)

	assert.Equal(t, 0.0, a.Elapsed())
	p, ok := a.Find("h")
	require.True(t, ok)
	assert.Equal(t, 50.0, p.X)
	assert.False(t, p.Moved())

	_, ok = a.Find("missing")
	assert.False(t, ok)
}
