package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/runway/internal/domain/story"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Scenes  map[string]*SceneConfig
	Story   *story.Story
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadScene loads a scene JSON file
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	p := "scenes/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return &cfg, nil
}

// LoadScenes loads every scene under scenes/, keyed by scene ID
func (l *Loader) LoadScenes() (map[string]*SceneConfig, error) {
	entries, err := fs.ReadDir(l.fsys, "scenes")
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)

	scenes := make(map[string]*SceneConfig, len(names))
	for _, name := range names {
		cfg, err := l.LoadScene(name)
		if err != nil {
			return nil, err
		}
		scenes[cfg.ID] = cfg
	}

	return scenes, nil
}

// LoadStory loads story.yaml and validates node links
func (l *Loader) LoadStory() (*story.Story, error) {
	data, err := fs.ReadFile(l.fsys, "story.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read story.yaml: %w", err)
	}

	var s story.Story
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse story.yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid story.yaml: %w", err)
	}

	return &s, nil
}

// LoadAll loads physics, scenes and story
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadScenes()
	if err != nil {
		return nil, err
	}

	st, err := l.LoadStory()
	if err != nil {
		return nil, err
	}

	for _, n := range st.Nodes {
		if n.Scene == "" {
			continue
		}
		if _, ok := scenes[n.Scene]; !ok {
			return nil, fmt.Errorf("node %s references unknown scene %s", n.ID, n.Scene)
		}
	}

	return &GameConfig{
		Physics: physics,
		Scenes:  scenes,
		Story:   st,
	}, nil
}
