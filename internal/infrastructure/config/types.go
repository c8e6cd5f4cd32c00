package config

// PhysicsConfig is the root config for physics.json
//
// All distances are percent of the viewport; y grows downward, so a negative
// velocity moves the player up.
type PhysicsConfig struct {
	Display   DisplayConfig          `json:"display"`
	Physics   PhysicsSettings        `json:"physics"`
	Movement  MovementConfig         `json:"movement"`
	Jump      JumpConfig             `json:"jump"`
	Knockback KnockbackConfig        `json:"knockback"`
	Camera    CameraConfig           `json:"camera"`
	Enemy     EnemyConfig            `json:"enemy"`
	Phases    map[string]PhaseConfig `json:"phases"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity            float64 `json:"gravity"`            // percent/sec^2
	MaxFrameDelta      float64 `json:"maxFrameDelta"`      // seconds, larger deltas are clamped
	FallDeathThreshold float64 `json:"fallDeathThreshold"` // distance below groundY that counts as death
	ClimbThreshold     float64 `json:"climbThreshold"`     // max rise walkable without jumping
	DropThreshold      float64 `json:"dropThreshold"`      // terrain drop that makes the player airborne
	PlatformTolerance  float64 `json:"platformTolerance"`  // vertical slack when checking platform support
	EdgeMargin         float64 `json:"edgeMargin"`         // level bounds are [EdgeMargin, width-EdgeMargin]
}

type MovementConfig struct {
	StepInterval     float64 `json:"stepInterval"` // seconds between discrete steps
	GroundStep       float64 `json:"groundStep"`
	AirStep          float64 `json:"airStep"`
	ChallengeMinX    float64 `json:"challengeMinX"`
	ChallengeMaxX    float64 `json:"challengeMaxX"`
	ChallengeCenterX float64 `json:"challengeCenterX"`
}

type JumpConfig struct {
	Velocity float64 `json:"velocity"` // initial vertical velocity (negative = up)
}

type KnockbackConfig struct {
	Impulse       float64 `json:"impulse"`       // initial |knockbackVX|
	Decay         float64 `json:"decay"`         // exponential decay rate per second
	Threshold     float64 `json:"threshold"`     // below this knockback is zeroed
	Teleport      float64 `json:"teleport"`      // instant displacement on hit
	Invincibility float64 `json:"invincibility"` // seconds
	ScreenShake   float64 `json:"screenShake"`   // seconds
}

type CameraConfig struct {
	Lerp     float64 `json:"lerp"`     // fraction of remaining distance per frame
	Snap     float64 `json:"snap"`     // snap when closer than this
	Epsilon  float64 `json:"epsilon"`  // minimum change worth publishing
	ViewSpan float64 `json:"viewSpan"` // visible width in level units
}

type EnemyConfig struct {
	RehitDelay    float64 `json:"rehitDelay"`    // seconds before the same enemy can hit again
	ReleaseMargin float64 `json:"releaseMargin"` // distance beyond enemy width that clears suppression
}

// PhaseConfig holds the multipliers a narrative phase applies to physics.
type PhaseConfig struct {
	GravityMultiplier    float64 `json:"gravityMultiplier"`
	SpeedMultiplier      float64 `json:"speedMultiplier"`
	EnemySpeedMultiplier float64 `json:"enemySpeedMultiplier"`
}

// NeutralPhase applies no modulation.
var NeutralPhase = PhaseConfig{GravityMultiplier: 1, SpeedMultiplier: 1, EnemySpeedMultiplier: 1}

// Phase returns the multipliers for a phase name, NeutralPhase if unknown.
// Zero multipliers in the file are treated as 1.
func (c *PhysicsConfig) Phase(name string) PhaseConfig {
	p, ok := c.Phases[name]
	if !ok {
		return NeutralPhase
	}
	if p.GravityMultiplier <= 0 {
		p.GravityMultiplier = 1
	}
	if p.SpeedMultiplier <= 0 {
		p.SpeedMultiplier = 1
	}
	if p.EnemySpeedMultiplier <= 0 {
		p.EnemySpeedMultiplier = 1
	}
	return p
}

// DefaultPhysics returns the tuning shipped in assets/configs/physics.json.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:            180,
			MaxFrameDelta:      0.05,
			FallDeathThreshold: 25,
			ClimbThreshold:     1.5,
			DropThreshold:      1,
			PlatformTolerance:  1,
			EdgeMargin:         2,
		},
		Movement: MovementConfig{
			StepInterval:     0.05,
			GroundStep:       1.5,
			AirStep:          0.5,
			ChallengeMinX:    5,
			ChallengeMaxX:    95,
			ChallengeCenterX: 50,
		},
		Jump: JumpConfig{
			Velocity: -60,
		},
		Knockback: KnockbackConfig{
			Impulse:       35,
			Decay:         8,
			Threshold:     0.5,
			Teleport:      5,
			Invincibility: 0.5,
			ScreenShake:   0.2,
		},
		Camera: CameraConfig{
			Lerp:     0.08,
			Snap:     0.05,
			Epsilon:  0.01,
			ViewSpan: 100,
		},
		Enemy: EnemyConfig{
			RehitDelay:    0.6,
			ReleaseMargin: 3,
		},
		Phases: map[string]PhaseConfig{
			"university":   {GravityMultiplier: 1, SpeedMultiplier: 1, EnemySpeedMultiplier: 1},
			"firstStartup": {GravityMultiplier: 1.2, SpeedMultiplier: 1.1, EnemySpeedMultiplier: 1.2},
			"scaleUp":      {GravityMultiplier: 1.44, SpeedMultiplier: 1.2, EnemySpeedMultiplier: 1.5},
		},
	}
}
