// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all tunables for the runner simulation.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
	Specials   SpecialsConfig   `yaml:"specials"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// PhysicsConfig defines the player body parameters.
type PhysicsConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpPower        float64 `yaml:"jump_power"`
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	LandingThreshold float64 `yaml:"landing_threshold"`
	SpawnX           float64 `yaml:"spawn_x"`
	SpawnY           float64 `yaml:"spawn_y"`
}

// RoutesConfig maps route names to surface heights.
type RoutesConfig struct {
	Top            float64 `yaml:"top"`
	Mid            float64 `yaml:"mid"`
	Low            float64 `yaml:"low"`
	Floor          float64 `yaml:"floor"`
	FloorThreshold float64 `yaml:"floor_threshold"`
}

// WorldConfig defines terrain generation geometry.
type WorldConfig struct {
	ScrollSpeed        float64      `yaml:"scroll_speed"`
	PlatformHeight     float64      `yaml:"platform_height"`
	FloorHeight        float64      `yaml:"floor_height"`
	HazardSize         float64      `yaml:"hazard_size"`
	CullMargin         float64      `yaml:"cull_margin"`
	InitialFloorBuffer float64      `yaml:"initial_floor_buffer"`
	FloorLookahead     float64      `yaml:"floor_lookahead"`
	FloorSegmentWidth  float64      `yaml:"floor_segment_width"`
	SpawnLookahead     float64      `yaml:"spawn_lookahead"`
	Routes             RoutesConfig `yaml:"routes"`
	TutorialPattern    string       `yaml:"tutorial_pattern"`
	Connector          struct {
		Width        float64 `yaml:"width"`
		GapThreshold float64 `yaml:"gap_threshold"`
		ReachX       float64 `yaml:"reach_x"`
	} `yaml:"connector"`
	OverheadClearance float64 `yaml:"overhead_clearance"`
	ItemPadding       float64 `yaml:"item_padding"`
	ItemLift          float64 `yaml:"item_lift"`
	Ambient           struct {
		Delay  float64 `yaml:"delay"`
		Step   float64 `yaml:"step"`
		Margin float64 `yaml:"margin"`
		Chance float64 `yaml:"chance"`
		Buffer float64 `yaml:"buffer"`
	} `yaml:"ambient"`
}

// WeightBand assigns difficulty weights (percentages) until a time in seconds.
// Until of zero marks the open-ended final band.
type WeightBand struct {
	Until  float64 `yaml:"until"`
	Easy   int     `yaml:"easy"`
	Medium int     `yaml:"medium"`
	Hard   int     `yaml:"hard"`
}

// TierBand labels the run's current difficulty until a time in seconds.
type TierBand struct {
	Until float64 `yaml:"until"`
	Tier  string  `yaml:"tier"`
}

// GapConfig defines the random spacing between consecutive patterns.
type GapConfig struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	LateAfter float64 `yaml:"late_after"`
	LateMin   float64 `yaml:"late_min"`
	LateMax   float64 `yaml:"late_max"`
}

// MinSocketsConfig is the guaranteed content count per pattern by tier.
type MinSocketsConfig struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// DifficultyConfig controls how the terrain difficulty curve progresses.
type DifficultyConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Weights    []WeightBand     `yaml:"weights"`
	Tiers      []TierBand       `yaml:"tiers"`
	MinSockets MinSocketsConfig `yaml:"min_sockets"`
	Gap        GapConfig        `yaml:"gap"`
}

// EffectsConfig defines timed effect durations and factors.
type EffectsConfig struct {
	BaseWorldScale    float64       `yaml:"base_world_scale"`
	SlowMotionFactor  float64       `yaml:"slow_motion_factor"`
	SpeedUpFactor     float64       `yaml:"speed_up_factor"`
	MultiplierFactor  int           `yaml:"multiplier_factor"`
	Invulnerability   time.Duration `yaml:"invulnerability"`
	Shield            time.Duration `yaml:"shield"`
	SlowMotion        time.Duration `yaml:"slow_motion"`
	SpeedUp           time.Duration `yaml:"speed_up"`
	Multiplier        time.Duration `yaml:"multiplier"`
	HitFlash          time.Duration `yaml:"hit_flash"`
	HitSoundCooldown  time.Duration `yaml:"hit_sound_cooldown"`
	ItemSoundCooldown time.Duration `yaml:"item_sound_cooldown"`
}

// SpecialsConfig defines the independently spawned special items.
type SpecialsConfig struct {
	Interval    time.Duration `yaml:"interval"`
	SpawnChance float64       `yaml:"spawn_chance"`
	Lanes       []float64     `yaml:"lanes"`
	Size        float64       `yaml:"size"`
	SpawnOffset float64       `yaml:"spawn_offset"`
	SpeedFactor float64       `yaml:"speed_factor"`
	CullX       float64       `yaml:"cull_x"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	ItemA   int `yaml:"item_a"`
	ItemB   int `yaml:"item_b"`
	ItemC   int `yaml:"item_c"`
	Screw   int `yaml:"screw"`
	Chip    int `yaml:"chip"`
	Battery int `yaml:"battery"`
}

// GameplayConfig defines lives and hit-box tolerance.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`
	MaxLives      int     `yaml:"max_lives"`
	HazardPadding float64 `yaml:"hazard_padding"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Physics.Width <= 0 || c.Physics.Height <= 0:
		return errors.New("config: player size must be positive")
	case c.World.PlatformHeight <= 0 || c.World.FloorHeight <= 0:
		return errors.New("config: platform heights must be positive")
	case c.World.FloorSegmentWidth <= 0:
		return errors.New("config: floor segment width must be positive")
	case c.World.ScrollSpeed <= 0:
		return errors.New("config: scroll speed must be positive")
	case c.World.Ambient.Step <= 0:
		return errors.New("config: ambient step must be positive")
	case c.World.Ambient.Chance < 0 || c.World.Ambient.Chance > 1:
		return errors.New("config: ambient chance must be within [0, 1]")
	case c.Specials.Interval <= 0:
		return errors.New("config: specials interval must be positive")
	case c.Specials.SpawnChance < 0 || c.Specials.SpawnChance > 1:
		return errors.New("config: specials spawn chance must be within [0, 1]")
	case c.Gameplay.Lives <= 0 || c.Gameplay.MaxLives < c.Gameplay.Lives:
		return fmt.Errorf("config: invalid lives %d (max %d)", c.Gameplay.Lives, c.Gameplay.MaxLives)
	case c.Effects.MultiplierFactor < 1:
		return errors.New("config: multiplier factor must be at least 1")
	case len(c.Difficulty.Weights) == 0:
		return errors.New("config: difficulty needs at least one weight band")
	case c.Difficulty.Gap.Max < c.Difficulty.Gap.Min || c.Difficulty.Gap.LateMax < c.Difficulty.Gap.LateMin:
		return errors.New("config: gap max below min")
	}
	for i, b := range c.Difficulty.Weights {
		if b.Easy < 0 || b.Medium < 0 || b.Hard < 0 || b.Easy+b.Medium+b.Hard != 100 {
			return fmt.Errorf("config: weight band %d must sum to 100", i)
		}
	}
	return nil
}
