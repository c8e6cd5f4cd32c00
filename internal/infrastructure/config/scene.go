package config

import "github.com/younwookim/runway/internal/domain/story"

// SceneConfig is the root config for scene JSON files
type SceneConfig struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Background     BackgroundConfig      `json:"background"`
	GroundY        float64               `json:"groundY"`
	LevelWidth     float64               `json:"levelWidth"`
	PlayerStartX   float64               `json:"playerStartX"`
	Obstacles      []ObstacleConfig      `json:"obstacles"`
	Enemies        []EnemySpawnConfig    `json:"enemies"`
	Platforms      []PlatformConfig      `json:"platforms"`
	GroundHoles    []GroundHoleConfig    `json:"groundHoles"`
	GroundSegments []GroundSegmentConfig `json:"groundSegments"`
	Collectibles   []CollectibleConfig   `json:"collectibles"`
	Triggers       TriggersConfig        `json:"triggers"`
}

type BackgroundConfig struct {
	Color    string  `json:"color"`
	Image    string  `json:"image"`
	Parallax float64 `json:"parallax"`
}

type ObstacleConfig struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type EnemySpawnConfig struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	X           float64 `json:"x"`
	Y           float64 `json:"y,omitempty"` // 0 = stand on local ground
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Speed       float64 `json:"speed"`
	PatrolStart float64 `json:"patrolStart"`
	PatrolEnd   float64 `json:"patrolEnd"`
	FacingRight bool    `json:"facingRight"`
}

type PlatformConfig struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MoveAxis  string  `json:"moveAxis,omitempty"` // "x", "y" or empty
	MoveRange float64 `json:"moveRange,omitempty"`
	MoveSpeed float64 `json:"moveSpeed,omitempty"` // cycles per second
}

type GroundHoleConfig struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type GroundSegmentConfig struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	GroundY float64 `json:"groundY"`
}

type CollectibleConfig struct {
	ID      string        `json:"id"`
	Kind    string        `json:"kind"`
	X       float64       `json:"x"`
	Y       float64       `json:"y,omitempty"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Effects story.Changes `json:"effects"`
}

type TriggersConfig struct {
	ChallengeGateX float64 `json:"challengeGateX,omitempty"`
	Challenge      string  `json:"challenge,omitempty"` // "quickTime" or "fallingCatch"
	DecisionX      float64 `json:"decisionX,omitempty"`
}
