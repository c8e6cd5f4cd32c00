package system

import (
	"github.com/younwookim/runway/internal/domain/entity"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// LoadScene converts a SceneConfig into a Scene entity
func LoadScene(cfg *config.SceneConfig) *entity.Scene {
	scene := &entity.Scene{
		ID:             cfg.ID,
		Name:           cfg.Name,
		GroundY:        cfg.GroundY,
		LevelWidth:     cfg.LevelWidth,
		PlayerStartX:   cfg.PlayerStartX,
		Obstacles:      make([]entity.Obstacle, 0, len(cfg.Obstacles)),
		Enemies:        make([]entity.EnemyDefinition, 0, len(cfg.Enemies)),
		Platforms:      make([]entity.PlatformDefinition, 0, len(cfg.Platforms)),
		GroundHoles:    make([]entity.GroundHole, 0, len(cfg.GroundHoles)),
		GroundSegments: make([]entity.GroundSegment, 0, len(cfg.GroundSegments)),
		Collectibles:   make([]entity.Collectible, 0, len(cfg.Collectibles)),
		ChallengeGateX: cfg.Triggers.ChallengeGateX,
		DecisionX:      cfg.Triggers.DecisionX,
	}

	switch cfg.Triggers.Challenge {
	case "quickTime":
		scene.Challenge = entity.ChallengeQuickTime
	case "fallingCatch":
		scene.Challenge = entity.ChallengeFallingCatch
	default:
		scene.Challenge = entity.ChallengeNone
		scene.ChallengeGateX = 0
	}

	for _, o := range cfg.Obstacles {
		scene.Obstacles = append(scene.Obstacles, entity.Obstacle{
			ID:     entity.EntityID(o.ID),
			Type:   o.Type,
			X:      o.X,
			Width:  o.Width,
			Height: o.Height,
		})
	}

	for _, e := range cfg.Enemies {
		scene.Enemies = append(scene.Enemies, entity.EnemyDefinition{
			ID:          entity.EntityID(e.ID),
			Type:        e.Type,
			X:           e.X,
			Y:           e.Y,
			Width:       e.Width,
			Height:      e.Height,
			Speed:       e.Speed,
			PatrolStart: e.PatrolStart,
			PatrolEnd:   e.PatrolEnd,
			FacingRight: e.FacingRight,
		})
	}

	for _, p := range cfg.Platforms {
		def := entity.PlatformDefinition{
			ID:        entity.EntityID(p.ID),
			Type:      p.Type,
			X:         p.X,
			Y:         p.Y,
			Width:     p.Width,
			Height:    p.Height,
			MoveRange: p.MoveRange,
			MoveSpeed: p.MoveSpeed,
		}
		switch p.MoveAxis {
		case "x":
			def.MoveAxis = entity.AxisX
		case "y":
			def.MoveAxis = entity.AxisY
		default:
			def.MoveAxis = entity.AxisNone
		}
		scene.Platforms = append(scene.Platforms, def)
	}

	for _, h := range cfg.GroundHoles {
		scene.GroundHoles = append(scene.GroundHoles, entity.GroundHole{Start: h.Start, End: h.End})
	}

	for _, g := range cfg.GroundSegments {
		scene.GroundSegments = append(scene.GroundSegments, entity.GroundSegment{
			Start:   g.Start,
			End:     g.End,
			GroundY: g.GroundY,
		})
	}

	for _, c := range cfg.Collectibles {
		scene.Collectibles = append(scene.Collectibles, entity.Collectible{
			ID:      entity.EntityID(c.ID),
			Kind:    c.Kind,
			X:       c.X,
			Y:       c.Y,
			Width:   c.Width,
			Height:  c.Height,
			Effects: c.Effects,
		})
	}

	return scene
}
