package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/domain/story"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

const frame = time.Second / 60

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: config.DefaultPhysics(),
		Scenes: map[string]*config.SceneConfig{
			"street": {
				ID:           "street",
				GroundY:      80,
				LevelWidth:   200,
				PlayerStartX: 10,
				Obstacles:    []config.ObstacleConfig{{ID: "crate", X: 60, Width: 4, Height: 5}},
				Collectibles: []config.CollectibleConfig{{ID: "coin", X: 90, Width: 2, Height: 2}},
				Triggers:     config.TriggersConfig{ChallengeGateX: 20, Challenge: "quickTime", DecisionX: 30},
			},
		},
		Story: &story.Story{
			Start: "start",
			Nodes: []*story.Node{
				{ID: "start", Scene: "street", Title: "Dorm room", Text: "Now what?", Choices: []story.Choice{
					{Text: "Build", Next: "exit", Outcome: "Shipped."},
				}},
				{ID: "exit", Ending: string(story.EndingExit)},
			},
		},
	}
}

func createTestHost(t *testing.T, savePath string) *host {
	t.Helper()
	s := session.New(createTestConfig(), nil, 1)
	require.NoError(t, s.Start(""))
	return newHost(s, savePath)
}

// runFor ticks the host for d, repeating the right arrow every 50ms when hold is set
func runFor(t *testing.T, h *host, start time.Time, d time.Duration, hold bool) time.Time {
	t.Helper()
	now := start
	var lastRepeat time.Time
	for end := start.Add(d); now.Before(end); now = now.Add(frame) {
		if hold && now.Sub(lastRepeat) >= 50*time.Millisecond {
			require.NoError(t, h.handleKey(tcell.KeyRight, 0, now))
			lastRepeat = now
		}
		h.tick(now, frame.Seconds())
	}
	return now
}

func TestMovementKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want string
		ok   bool
	}{
		{"arrow left", tcell.KeyLeft, 0, "Left", true},
		{"a", tcell.KeyRune, 'a', "Left", true},
		{"l", tcell.KeyRune, 'l', "Right", true},
		{"space", tcell.KeyRune, ' ', "Jump", true},
		{"arrow up", tcell.KeyUp, 0, "Jump", true},
		{"other rune", tcell.KeyRune, 'x', "", false},
		{"enter", tcell.KeyEnter, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := movementKey(tt.key, tt.r)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, k.String())
			}
		})
	}
}

func TestHost_HeldKeyWalksAndReleases(t *testing.T) {
	h := createTestHost(t, "")
	w := h.session.World()
	t0 := time.Unix(1000, 0)

	now := runFor(t, h, t0, 200*time.Millisecond, true)
	moved := w.Player().X
	assert.Greater(t, moved, 10.0)

	// no more repeats; the hold expires and the player stops
	runFor(t, h, now, 500*time.Millisecond, false)
	stopped := w.Player().X
	runFor(t, h, now.Add(time.Second), 300*time.Millisecond, false)
	assert.Equal(t, stopped, w.Player().X)
	assert.Less(t, stopped, moved+10, "hold released within the timeout")
}

func TestHost_QuickTimeAndDecision(t *testing.T) {
	h := createTestHost(t, "")
	s := h.session
	t0 := time.Unix(1000, 0)

	now := runFor(t, h, t0, 2*time.Second, true)
	require.Equal(t, state.StateChallengeIntro, s.State())

	require.NoError(t, h.handleKey(tcell.KeyEnter, 0, now))
	require.Equal(t, state.StateChallenge, s.State())

	// 'd' answers prompts instead of moving during a quick-time challenge
	x := s.World().Player().X
	require.NoError(t, h.handleKey(tcell.KeyRune, 'd', now))
	assert.Equal(t, x, s.World().Player().X)

	for i := 0; i < 10 && s.State() == state.StateChallenge; i++ {
		require.NoError(t, h.handleKey(tcell.KeyRune, 'a', now))
	}
	require.Equal(t, state.StateChallengeResult, s.State())

	require.NoError(t, h.handleKey(tcell.KeyRune, ' ', now))
	require.Equal(t, state.StatePlaying, s.State())

	runFor(t, h, now, 2*time.Second, true)
	require.Equal(t, state.StateDecision, s.State())

	require.NoError(t, h.handleKey(tcell.KeyRune, '5', now), "out of range choice ignored")
	assert.Equal(t, state.StateDecision, s.State())

	require.NoError(t, h.handleKey(tcell.KeyRune, '1', now))
	assert.Equal(t, state.StateOutcome, s.State())

	require.NoError(t, h.handleKey(tcell.KeyEnter, 0, now))
	assert.Equal(t, state.StateVictory, s.State())

	require.NoError(t, h.handleKey(tcell.KeyEnter, 0, now))
	assert.Equal(t, state.StatePlaying, s.State(), "enter restarts")
}

func TestHost_PauseQuitAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	h := createTestHost(t, path)
	now := time.Unix(1000, 0)

	require.NoError(t, h.handleKey(tcell.KeyEscape, 0, now))
	assert.Equal(t, state.StatePaused, h.session.State())
	require.NoError(t, h.handleKey(tcell.KeyEscape, 0, now))
	assert.Equal(t, state.StatePlaying, h.session.State())

	require.NoError(t, h.handleKey(tcell.KeyF5, 0, now))
	d, err := session.ReadSave(path)
	require.NoError(t, err)
	assert.Equal(t, "start", d.NodeID)

	require.NoError(t, h.handleKey(tcell.KeyRune, 'q', now))
	assert.True(t, h.quit)
}

func TestHost_MuteKey(t *testing.T) {
	h := createTestHost(t, "")
	now := time.Unix(1000, 0)
	require.NoError(t, h.handleKey(tcell.KeyRune, 'm', now), "no handler set")

	toggles := 0
	h.onMute = func() { toggles++ }
	require.NoError(t, h.handleKey(tcell.KeyRune, 'm', now))
	assert.Equal(t, 1, toggles)
	assert.Equal(t, state.StatePlaying, h.session.State())
}

// fakeCanvas records cells in memory
type fakeCanvas struct {
	w, h  int
	cells [][]rune
}

func newFakeCanvas(w, h int) *fakeCanvas {
	c := &fakeCanvas{w: w, h: h, cells: make([][]rune, h)}
	for y := range c.cells {
		c.cells[y] = make([]rune, w)
	}
	return c
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	c.cells[y][x] = r
}

func (c *fakeCanvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRender(t *testing.T) {
	h := createTestHost(t, "")
	c := newFakeCanvas(100, 41)

	render(c, h.session, 0)
	out := c.String()

	assert.Contains(t, out, "@", "player drawn")
	assert.Contains(t, out, "#", "obstacle drawn")
	assert.Contains(t, out, "*", "collectible drawn")
	assert.Contains(t, out, "█", "ground drawn")
	assert.Contains(t, c.String(), "M 10")

	// the player stands on the ground: column 10, just above row 32
	assert.Equal(t, '@', c.cells[31][10])
	assert.Equal(t, '█', c.cells[32][10])
}

func TestRender_PanelAndTinyScreen(t *testing.T) {
	h := createTestHost(t, "")
	h.session.TogglePause()

	c := newFakeCanvas(60, 20)
	render(c, h.session, 0)
	assert.Contains(t, c.String(), "PAUSED")

	assert.NotPanics(t, func() {
		render(newFakeCanvas(0, 0), h.session, 0)
		render(newFakeCanvas(5, 1), h.session, 0)
	})
}
