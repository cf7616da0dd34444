package game

import (
	"sort"
	"time"

	"github.com/vovakirdan/autoscroller/internal/config"
)

// EffectKind identifies a timed status effect.
type EffectKind int

const (
	EffectInvulnerable EffectKind = iota
	EffectShield
	EffectSlowMotion
	EffectSpeedUp
	EffectMultiplier
	EffectHitFlash
)

func (k EffectKind) String() string {
	switch k {
	case EffectInvulnerable:
		return "invulnerable"
	case EffectShield:
		return "shield"
	case EffectSlowMotion:
		return "slow-motion"
	case EffectSpeedUp:
		return "speed-up"
	case EffectMultiplier:
		return "multiplier"
	case EffectHitFlash:
		return "hit-flash"
	default:
		return "unknown"
	}
}

// ActiveEffect is an effect with its remaining time.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining time.Duration
}

// Effects is the table of effect kind to start timestamp. Absent kinds are
// inactive. Timestamps come from the simulation clock.
type Effects struct {
	durations map[EffectKind]time.Duration
	started   map[EffectKind]time.Duration
}

// NewEffects creates an empty table with durations from configuration.
func NewEffects(cfg config.EffectsConfig) *Effects {
	return &Effects{
		durations: map[EffectKind]time.Duration{
			EffectInvulnerable: cfg.Invulnerability,
			EffectShield:       cfg.Shield,
			EffectSlowMotion:   cfg.SlowMotion,
			EffectSpeedUp:      cfg.SpeedUp,
			EffectMultiplier:   cfg.Multiplier,
			EffectHitFlash:     cfg.HitFlash,
		},
		started: make(map[EffectKind]time.Duration),
	}
}

// Start (re)starts an effect at now. Slow-motion and speed-up are mutually
// exclusive: starting one clears the other.
func (e *Effects) Start(k EffectKind, now time.Duration) {
	e.started[k] = now
	switch k {
	case EffectSlowMotion:
		delete(e.started, EffectSpeedUp)
	case EffectSpeedUp:
		delete(e.started, EffectSlowMotion)
	}
}

// Stop clears an effect.
func (e *Effects) Stop(k EffectKind) {
	delete(e.started, k)
}

// Active reports whether the effect is running at now. It does not expire
// anything.
func (e *Effects) Active(k EffectKind, now time.Duration) bool {
	start, ok := e.started[k]
	return ok && now-start <= e.durations[k]
}

// Remaining returns the time left on an effect, or zero if inactive.
func (e *Effects) Remaining(k EffectKind, now time.Duration) time.Duration {
	if !e.Active(k, now) {
		return 0
	}
	return e.durations[k] - (now - e.started[k])
}

// Expire removes every effect whose duration has elapsed and returns their
// kinds in ascending order.
func (e *Effects) Expire(now time.Duration) []EffectKind {
	var expired []EffectKind
	for k := range e.started {
		if !e.Active(k, now) {
			expired = append(expired, k)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, k := range expired {
		delete(e.started, k)
	}
	return expired
}

// List returns the active effects in ascending kind order.
func (e *Effects) List(now time.Duration) []ActiveEffect {
	var out []ActiveEffect
	for k := range e.started {
		if e.Active(k, now) {
			out = append(out, ActiveEffect{Kind: k, Remaining: e.Remaining(k, now)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Reset clears every effect.
func (e *Effects) Reset() {
	clear(e.started)
}

// WorldScale derives the world time scale from the effect table.
// Speed-up wins over slow-motion; otherwise the base scale applies.
func WorldScale(e *Effects, now time.Duration, cfg config.EffectsConfig) float64 {
	switch {
	case e.Active(EffectSpeedUp, now):
		return cfg.SpeedUpFactor
	case e.Active(EffectSlowMotion, now):
		return cfg.SlowMotionFactor
	default:
		return cfg.BaseWorldScale
	}
}
