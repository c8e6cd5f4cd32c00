package challenge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestQuickTime_AllHits(t *testing.T) {
	q := NewQuickTime([]Prompt{{Key: "a", Window: 1}, {Key: "b", Window: 1}})
	var reported []int
	q.OnComplete = func(score int) { reported = append(reported, score) }

	assert.True(t, q.Press("a"))
	assert.True(t, q.Press("b"))

	assert.True(t, q.Done())
	assert.Equal(t, 100, q.Score())
	assert.Equal(t, []int{100}, reported)

	assert.False(t, q.Press("a"), "presses after completion are ignored")
	assert.Equal(t, []int{100}, reported, "OnComplete fires once")
}

func TestQuickTime_WrongKeyAndTimeout(t *testing.T) {
	q := NewQuickTime([]Prompt{{Key: "a", Window: 0.5}, {Key: "b", Window: 0.5}, {Key: "c", Window: 0.5}, {Key: "d", Window: 0.5}})

	assert.False(t, q.Press("x"))

	p, left, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "b", p.Key)
	assert.Equal(t, 0.5, left)

	// let "b" expire
	for i := 0; i < 40; i++ {
		q.Update(1.0 / 60.0)
	}
	p, _, ok = q.Current()
	require.True(t, ok)
	assert.Equal(t, "c", p.Key)

	q.Press("c")
	q.Press("d")

	assert.True(t, q.Done())
	assert.Equal(t, 50, q.Score())
}

func TestRandomPrompts(t *testing.T) {
	prompts := RandomPrompts(testRNG(), []string{"a", "s", "d"}, 5, 0.8)

	require.Len(t, prompts, 5)
	for _, p := range prompts {
		assert.Contains(t, []string{"a", "s", "d"}, p.Key)
		assert.Equal(t, 0.8, p.Window)
	}
}

func TestFallingCatch_PlayerUnderEveryItem(t *testing.T) {
	cfg := DefaultCatchConfig(80)
	cfg.Duration = 2

	var fc *FallingCatch
	// the player teleports under the oldest live item each frame
	fc = NewFallingCatch(cfg, testRNG(), func() (float64, float64) {
		for _, it := range fc.Items() {
			if !it.Caught && !it.Missed {
				return it.X, 80
			}
		}
		return 50, 80
	})

	var score = -1
	fc.OnComplete = func(s int) { score = s }

	for i := 0; i < 60*10 && !fc.Done(); i++ {
		fc.Update(1.0 / 60.0)
	}

	require.True(t, fc.Done())
	assert.Equal(t, 100, score)
	assert.NotEmpty(t, fc.Items())
}

func TestFallingCatch_PlayerAbsent(t *testing.T) {
	cfg := DefaultCatchConfig(80)
	cfg.Duration = 2

	// player far outside the spawn range
	fc := NewFallingCatch(cfg, testRNG(), func() (float64, float64) { return -500, 80 })

	for i := 0; i < 60*10 && !fc.Done(); i++ {
		fc.Update(1.0 / 60.0)
	}

	require.True(t, fc.Done())
	assert.Equal(t, 0, fc.Score())
	for _, it := range fc.Items() {
		assert.True(t, it.Missed)
		assert.GreaterOrEqual(t, it.X, cfg.MinX)
		assert.LessOrEqual(t, it.X, cfg.MaxX)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 50, percent(1, 2))
}
