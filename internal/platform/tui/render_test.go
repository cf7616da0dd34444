package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/game"
	"github.com/vovakirdan/autoscroller/internal/level"
	"github.com/vovakirdan/autoscroller/internal/player"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		State:    game.StateRunning,
		Score:    120,
		Lives:    2,
		MaxLives: 3,
		Player:   player.State{X: 50, Y: 290, Width: 40, Height: 60},
		Platforms: []level.Platform{
			{ID: 1, X: 0, Y: 350, Width: 960, Height: 10, Kind: level.KindFloor},
			{ID: 2, X: 300, Y: 260, Width: 200, Height: 15, Kind: level.KindPlatform},
		},
		Hazards: []level.Hazard{
			{ID: 3, X: 200, Y: 335, Width: 15, Height: 15, Kind: level.HazardGround},
		},
		Items: []level.Item{
			{ID: 4, X: 600, Y: 225, Width: 30, Height: 30, Tier: level.TierC},
			{ID: 5, X: 700, Y: 225, Width: 30, Height: 30, Tier: level.TierC, Collected: true},
		},
		Effects: []game.ActiveEffect{{Kind: game.EffectShield, Remaining: 2500 * time.Millisecond}},
	}
}

func TestDrawWorld(t *testing.T) {
	// 96x36 world rows: one cell per 10 world units.
	s := core.NewScreen(96, 37)
	DrawWorld(s, testSnapshot(), core.WorldWidth, core.WorldHeight)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"player", 6, 1 + 30, '█'},
		{"floor", 10, 1 + 35, '▀'},
		{"platform", 35, 1 + 26, '='},
		{"hazard", 20, 1 + 34, '^'},
		{"item", 61, 1 + 23, '$'},
		{"collected item hidden", 71, 1 + 23, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	hud := s.Row(0)
	for _, want := range []string{"SCORE 000120", "♥♥·", "SHIELD 2.5s"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestDrawWorldClipsAboveView(t *testing.T) {
	s := core.NewScreen(96, 37)
	snap := testSnapshot()
	snap.Player.Y = -100
	DrawWorld(s, snap, core.WorldWidth, core.WorldHeight)
	if strings.ContainsRune(s.Row(0), '█') {
		t.Error("player drawn over the HUD")
	}
}

func TestPlayerColor(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want core.Color
	}{
		{"normal", game.Snapshot{}, core.ColorWhite},
		{"hit flash", game.Snapshot{HitFlash: true, Shielded: true}, core.ColorBrightRed},
		{"shield", game.Snapshot{Shielded: true}, core.ColorBrightCyan},
		{"invulnerable blink", game.Snapshot{Invulnerable: true, Elapsed: 150 * time.Millisecond}, core.ColorGray},
		{"invulnerable steady", game.Snapshot{Invulnerable: true, Elapsed: 50 * time.Millisecond}, core.ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playerColor(tt.snap); got != tt.want {
				t.Errorf("playerColor() = %v, expected %v", got, tt.want)
			}
		})
	}
}
