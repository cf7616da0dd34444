package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/autoscroller/internal/config"
)

func testEffects() (*Effects, config.EffectsConfig) {
	cfg := config.DefaultRunnerConfig().Effects
	return NewEffects(cfg), cfg
}

func TestEffectActiveWindow(t *testing.T) {
	e, cfg := testEffects()
	start := 2 * time.Second
	e.Start(EffectShield, start)

	tests := []struct {
		name string
		now  time.Duration
		want bool
	}{
		{"at start", start, true},
		{"midway", start + cfg.Shield/2, true},
		{"at duration", start + cfg.Shield, true},
		{"past duration", start + cfg.Shield + time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Active(EffectShield, tt.now); got != tt.want {
				t.Errorf("Active() = %v, expected %v", got, tt.want)
			}
		})
	}

	if got := e.Remaining(EffectShield, start+time.Second); got != cfg.Shield-time.Second {
		t.Errorf("Remaining() = %v, expected %v", got, cfg.Shield-time.Second)
	}
	if e.Active(EffectSpeedUp, start) {
		t.Error("never-started effect reported active")
	}
}

func TestEffectRestartExtends(t *testing.T) {
	e, cfg := testEffects()
	e.Start(EffectShield, 0)
	e.Start(EffectShield, 5*time.Second)
	if !e.Active(EffectShield, cfg.Shield+time.Second) {
		t.Error("restarted shield should run from the new start")
	}
}

func TestEffectExpire(t *testing.T) {
	e, cfg := testEffects()
	e.Start(EffectHitFlash, 0)
	e.Start(EffectInvulnerable, 0)
	e.Start(EffectShield, 0)

	now := cfg.Invulnerability + time.Millisecond
	got := e.Expire(now)
	want := []EffectKind{EffectInvulnerable, EffectHitFlash}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expire() = %v, expected %v", got, want)
	}
	if again := e.Expire(now); len(again) != 0 {
		t.Errorf("second Expire() = %v, expected none", again)
	}

	list := e.List(now)
	if len(list) != 1 || list[0].Kind != EffectShield {
		t.Fatalf("List() = %v, expected only shield", list)
	}
	if list[0].Remaining != cfg.Shield-now {
		t.Errorf("shield remaining = %v, expected %v", list[0].Remaining, cfg.Shield-now)
	}

	e.Reset()
	if len(e.List(now)) != 0 {
		t.Error("Reset() left effects behind")
	}
}

func TestSlowAndSpeedExclusive(t *testing.T) {
	e, _ := testEffects()
	e.Start(EffectSlowMotion, 0)
	e.Start(EffectSpeedUp, time.Second)
	if e.Active(EffectSlowMotion, time.Second) {
		t.Error("speed-up should cancel slow-motion")
	}
	e.Start(EffectSlowMotion, 2*time.Second)
	if e.Active(EffectSpeedUp, 2*time.Second) {
		t.Error("slow-motion should cancel speed-up")
	}
	if !e.Active(EffectSlowMotion, 2*time.Second) {
		t.Error("slow-motion should be active")
	}
}

func TestWorldScale(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Effects
	tests := []struct {
		name   string
		setup  func(e *Effects)
		expect float64
	}{
		{"base", func(e *Effects) {}, cfg.BaseWorldScale},
		{"slow motion", func(e *Effects) { e.Start(EffectSlowMotion, 0) }, cfg.SlowMotionFactor},
		{"speed up", func(e *Effects) { e.Start(EffectSpeedUp, 0) }, cfg.SpeedUpFactor},
		{"speed up wins", func(e *Effects) {
			e.started[EffectSlowMotion] = 0
			e.started[EffectSpeedUp] = 0
		}, cfg.SpeedUpFactor},
		{"unrelated effects", func(e *Effects) {
			e.Start(EffectShield, 0)
			e.Start(EffectMultiplier, 0)
		}, cfg.BaseWorldScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEffects(cfg)
			tt.setup(e)
			if got := WorldScale(e, time.Second, cfg); got != tt.expect {
				t.Errorf("WorldScale() = %v, expected %v", got, tt.expect)
			}
		})
	}

	e := NewEffects(cfg)
	e.Start(EffectSpeedUp, 0)
	if got := WorldScale(e, cfg.SpeedUp+time.Millisecond, cfg); got != cfg.BaseWorldScale {
		t.Errorf("WorldScale() after expiry = %v, expected %v", got, cfg.BaseWorldScale)
	}
}

func TestEffectKindString(t *testing.T) {
	if EffectSlowMotion.String() != "slow-motion" {
		t.Errorf("String() = %q", EffectSlowMotion.String())
	}
	if EffectKind(99).String() != "unknown" {
		t.Errorf("String() = %q, expected unknown", EffectKind(99).String())
	}
}
