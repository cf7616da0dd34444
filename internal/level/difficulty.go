package level

import (
	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/pattern"
)

// Curve maps elapsed run time to generation difficulty.
type Curve struct {
	cfg config.DifficultyConfig
}

// NewCurve creates a curve from configuration.
func NewCurve(cfg config.DifficultyConfig) Curve {
	return Curve{cfg: cfg}
}

// IsEnabled returns whether the curve progresses with time.
// A disabled curve stays pinned to its first band.
func (c Curve) IsEnabled() bool {
	return c.cfg.Enabled
}

func (c Curve) effective(seconds float64) float64 {
	if !c.cfg.Enabled {
		return 0
	}
	return seconds
}

// Weights returns the EASY/MEDIUM/HARD percentages at the given time.
func (c Curve) Weights(seconds float64) config.WeightBand {
	t := c.effective(seconds)
	bands := c.cfg.Weights
	if len(bands) == 0 {
		return config.WeightBand{Easy: 100}
	}
	for _, b := range bands {
		if b.Until <= 0 || t < b.Until {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Pick maps a roll in [0, 100) onto the weighted tiers.
func (c Curve) Pick(seconds, roll float64) pattern.Difficulty {
	w := c.Weights(seconds)
	switch {
	case roll < float64(w.Easy):
		return pattern.Easy
	case roll < float64(w.Easy+w.Medium):
		return pattern.Medium
	default:
		return pattern.Hard
	}
}

// Tier returns the run's difficulty label used for socket gating and
// the minimum content floor.
func (c Curve) Tier(seconds float64) pattern.Difficulty {
	t := c.effective(seconds)
	for _, b := range c.cfg.Tiers {
		if b.Until <= 0 || t < b.Until {
			d, err := pattern.ParseDifficulty(b.Tier)
			if err != nil {
				return pattern.Easy
			}
			return d
		}
	}
	return pattern.Hard
}

// MinSockets returns the guaranteed content count per pattern for a tier.
func (c Curve) MinSockets(tier pattern.Difficulty) int {
	switch tier {
	case pattern.Medium:
		return c.cfg.MinSockets.Medium
	case pattern.Hard:
		return c.cfg.MinSockets.Hard
	default:
		return c.cfg.MinSockets.Easy
	}
}

// GapRange returns the inclusive gap bounds between patterns.
func (c Curve) GapRange(seconds float64) (lo, hi float64) {
	g := c.cfg.Gap
	if c.effective(seconds) > g.LateAfter {
		return g.LateMin, g.LateMax
	}
	return g.Min, g.Max
}
