package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	cfg := RunnerConfig{
		Physics: PhysicsConfig{
			Width:            40,
			Height:           60,
			MoveSpeed:        5,
			JumpPower:        14,
			Gravity:          0.6,
			MaxFallSpeed:     14,
			LandingThreshold: 20,
			SpawnX:           50,
			SpawnY:           200,
		},
		World: WorldConfig{
			ScrollSpeed:        2, // 120 px/s at 60 fps
			PlatformHeight:     15,
			FloorHeight:        10,
			HazardSize:         15,
			CullMargin:         100,
			InitialFloorBuffer: 400,
			FloorLookahead:     50,
			FloorSegmentWidth:  600,
			SpawnLookahead:     200,
			Routes: RoutesConfig{
				Top:            80,
				Mid:            170,
				Low:            260,
				Floor:          350,
				FloorThreshold: 300,
			},
			TutorialPattern:   "p0",
			OverheadClearance: 10,
			ItemPadding:       2,
			ItemLift:          5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Weights: []WeightBand{
				{Until: 30, Easy: 60, Medium: 30, Hard: 10},
				{Until: 90, Easy: 30, Medium: 50, Hard: 20},
				{Until: 0, Easy: 20, Medium: 50, Hard: 30},
			},
			Tiers: []TierBand{
				{Until: 45, Tier: "EASY"},
				{Until: 120, Tier: "MEDIUM"},
				{Until: 0, Tier: "HARD"},
			},
			MinSockets: MinSocketsConfig{Easy: 3, Medium: 4, Hard: 6},
			Gap: GapConfig{
				Min:       60,
				Max:       120,
				LateAfter: 60,
				LateMin:   80,
				LateMax:   150,
			},
		},
		Effects: EffectsConfig{
			BaseWorldScale:    1.3,
			SlowMotionFactor:  0.5,
			SpeedUpFactor:     2.0,
			MultiplierFactor:  2,
			Invulnerability:   1500 * time.Millisecond,
			Shield:            10 * time.Second,
			SlowMotion:        6 * time.Second,
			SpeedUp:           10 * time.Second,
			Multiplier:        10 * time.Second,
			HitFlash:          300 * time.Millisecond,
			HitSoundCooldown:  300 * time.Millisecond,
			ItemSoundCooldown: 150 * time.Millisecond,
		},
		Specials: SpecialsConfig{
			Interval:    2 * time.Second,
			SpawnChance: 0.6,
			Lanes:       []float64{50, 140, 230},
			Size:        30,
			SpawnOffset: 50,
			SpeedFactor: 2.0,
			CullX:       -50,
		},
		Scoring: ScoringConfig{
			ItemA:   10,
			ItemB:   25,
			ItemC:   50,
			Screw:   50,
			Chip:    100,
			Battery: 150,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			MaxLives:      3,
			HazardPadding: 3,
		},
	}
	cfg.World.Connector.Width = 80
	cfg.World.Connector.GapThreshold = 180
	cfg.World.Connector.ReachX = 100
	cfg.World.Ambient.Delay = 5
	cfg.World.Ambient.Step = 150
	cfg.World.Ambient.Margin = 50
	cfg.World.Ambient.Chance = 0.3
	cfg.World.Ambient.Buffer = 20
	return cfg
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
