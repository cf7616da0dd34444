// Package tui provides the Bubble Tea host for the runner.
// It owns the terminal loop, maps keys to intents, schedules the frame driver
// and the special item spawn timer, and renders the world.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/autoscroller/internal/game"
)

// FrameMsg triggers one simulation tick. It carries the frame task token it
// was scheduled under; a stale token makes the tick a no-op.
type FrameMsg struct {
	Token game.Token
}

// SpawnMsg triggers one special item spawn attempt.
type SpawnMsg struct {
	Token game.Token
}

// frameCmd schedules the next frame at the given tick rate.
func frameCmd(tickRate int, tok game.Token) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Token: tok}
	})
}

// spawnCmd schedules the next spawn attempt.
func spawnCmd(interval time.Duration, tok game.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SpawnMsg{Token: tok}
	})
}
