package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/runway/internal/domain/story"
)

const assetsPath = "../../../assets/configs"

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader(assetsPath)

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, DefaultPhysics(), cfg, "shipped tuning matches DefaultPhysics")
}

func TestLoader_LoadScene(t *testing.T) {
	loader := NewLoader(assetsPath)

	cfg, err := loader.LoadScene("garage")
	require.NoError(t, err)

	assert.Equal(t, "garage", cfg.ID)
	assert.Equal(t, 80.0, cfg.GroundY)
	assert.Equal(t, 240.0, cfg.LevelWidth)
	require.Len(t, cfg.GroundHoles, 2)
	assert.Equal(t, 70.0, cfg.GroundHoles[0].Start)
	assert.Equal(t, "fallingCatch", cfg.Triggers.Challenge)
	require.Len(t, cfg.Collectibles, 1)
	assert.Equal(t, 10, cfg.Collectibles[0].Effects.Money)
}

func TestLoader_LoadSceneMissing(t *testing.T) {
	loader := NewLoader(assetsPath)

	_, err := loader.LoadScene("nowhere")
	assert.Error(t, err)
}

func TestLoader_LoadSceneDefaultsID(t *testing.T) {
	fsys := fstest.MapFS{
		"scenes/bare.json": {Data: []byte(`{"groundY": 80, "levelWidth": 100}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadScene("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", cfg.ID)
}

func TestLoader_LoadScenes(t *testing.T) {
	loader := NewLoader(assetsPath)

	scenes, err := loader.LoadScenes()
	require.NoError(t, err)

	for _, id := range []string{"campus", "hackathon", "office", "garage", "downtown", "tower"} {
		assert.Contains(t, scenes, id)
	}
	assert.Equal(t, "x", scenes["downtown"].Platforms[0].MoveAxis)
}

func TestLoader_LoadStory(t *testing.T) {
	loader := NewLoader(assetsPath)

	st, err := loader.LoadStory()
	require.NoError(t, err)

	start, err := st.StartNode()
	require.NoError(t, err)
	assert.Equal(t, "dorm", start.ID)
	assert.Equal(t, "university", start.Phase)
	require.Len(t, start.Choices, 3)
	assert.Equal(t, story.Changes{Momentum: 10, Energy: -10}, start.Choices[0].Effects)

	scandal, err := st.NodeByID("scandal")
	require.NoError(t, err)
	assert.True(t, scandal.IsTerminal())
	assert.Equal(t, string(story.EndingDisgraced), scandal.Ending)
}

func TestLoader_LoadStoryInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "start: [unterminated"},
		{"dangling choice", "start: a\nnodes:\n  - id: a\n    choices:\n      - next: b\n"},
		{"missing start", "start: z\nnodes:\n  - id: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewFSLoader(fstest.MapFS{"story.yaml": {Data: []byte(tt.data)}}, "mem")
			_, err := loader.LoadStory()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(assetsPath)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotEmpty(t, cfg.Scenes)
	assert.NotNil(t, cfg.Story)
}

func TestLoader_LoadAllUnknownScene(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json":  {Data: []byte(`{"physics": {"gravity": 180}}`)},
		"scenes/a.json": {Data: []byte(`{"id": "a"}`)},
		"story.yaml":    {Data: []byte("start: n\nnodes:\n  - id: n\n    scene: b\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadAll()
	assert.ErrorContains(t, err, "unknown scene b")
}

func TestPhysicsConfig_Phase(t *testing.T) {
	cfg := DefaultPhysics()

	assert.Equal(t, 1.2, cfg.Phase("firstStartup").GravityMultiplier)
	assert.Equal(t, 1.5, cfg.Phase("scaleUp").EnemySpeedMultiplier)
	assert.Equal(t, NeutralPhase, cfg.Phase("unknown"))

	cfg.Phases["partial"] = PhaseConfig{SpeedMultiplier: 2}
	assert.Equal(t, PhaseConfig{GravityMultiplier: 1, SpeedMultiplier: 2, EnemySpeedMultiplier: 1}, cfg.Phase("partial"))
}
