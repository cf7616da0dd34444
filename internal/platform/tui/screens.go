package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/game"
)

// leaderboardPreview is the number of scores shown on the menu.
const leaderboardPreview = 5

func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// menuView renders the title screen with the leaderboard preview.
func menuView(snap game.Snapshot, theme Theme, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.MenuTitle.Render("A U T O S C R O L L E R"))
	b.WriteString("\n")
	b.WriteString(theme.MenuSubtitle.Render("run, jump, and keep up with the belt"))
	b.WriteString("\n\n")

	b.WriteString(theme.BoardHeader.Render("HIGH SCORES"))
	b.WriteString("\n")
	switch {
	case snap.PersistenceFailed:
		b.WriteString(theme.Warning.Render("scores unavailable"))
		b.WriteString("\n")
	case len(snap.Leaderboard) == 0:
		b.WriteString(theme.MenuDim.Render("no scores yet"))
		b.WriteString("\n")
	default:
		for i, hs := range snap.Leaderboard {
			if i == leaderboardPreview {
				break
			}
			style := theme.BoardRow
			if i == 0 {
				style = theme.BoardBest
			}
			b.WriteString(style.Render(fmt.Sprintf("%d. %-3s %7d", i+1, hs.Name, hs.Score)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.MenuItem.Render("ENTER  start"))
	b.WriteString("\n")
	b.WriteString(theme.MenuDim.Render("tab scores  ·  q quit"))

	return place(width, height, theme.OverlayBorder.Render(b.String()))
}

// helpView renders the controls screen shown before the first run.
func helpView(theme Theme, width, height int) string {
	lines := []string{
		theme.OverlayTitle.Render("HOW TO PLAY"),
		"",
		theme.OverlayText.Render("←/→ or A/D   move"),
		theme.OverlayText.Render("SPACE/W/↑    jump"),
		theme.OverlayText.Render("R            respawn"),
		theme.OverlayText.Render("P            pause"),
		"",
		theme.OverlayText.Render("^ sensors and | cables cost a life."),
		theme.OverlayText.Render("o O $ parts score points."),
		theme.OverlayText.Render("♥ * # + Y T S % > are power-ups."),
		"",
		theme.MenuItem.Render("ENTER  go"),
		theme.MenuDim.Render("esc back"),
	}
	return place(width, height, theme.OverlayBorder.Render(strings.Join(lines, "\n")))
}

// gameOverView renders the final score and the name entry.
func gameOverView(snap game.Snapshot, theme Theme, input string, status string, width, height int) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render("GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(theme.OverlayText.Render(fmt.Sprintf("score     %d", snap.Score)))
	b.WriteString("\n")
	b.WriteString(theme.OverlayText.Render(fmt.Sprintf("patterns  %d", snap.PatternsPlaced)))
	b.WriteString("\n")
	b.WriteString(theme.OverlayText.Render(fmt.Sprintf("time      %s", snap.Elapsed.Truncate(100*time.Millisecond))))
	b.WriteString("\n\n")

	if !snap.Submitted && input != "" {
		b.WriteString(input)
		b.WriteString("\n")
		b.WriteString(theme.MenuDim.Render("enter save  ·  esc skip"))
	} else {
		b.WriteString(theme.MenuItem.Render("N  new run"))
		b.WriteString("\n")
		b.WriteString(theme.MenuDim.Render("esc menu  ·  q quit"))
	}

	if status != "" {
		b.WriteString("\n\n")
		style := theme.Success
		if snap.PersistenceFailed || strings.HasPrefix(status, "!") {
			style = theme.Warning
			status = strings.TrimPrefix(status, "!")
		}
		b.WriteString(style.Render(status))
	}

	return place(width, height, theme.OverlayBorder.Render(b.String()))
}

// drawPause draws the pause box over the world in the screen buffer.
func drawPause(s *core.Screen) {
	const w, h = 28, 6
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)
	s.DrawTextColor(x+(w-11)/2, y+1, "P A U S E D", core.ColorBrightCyan)
	s.DrawTextColor(x+(w-20)/2, y+3, "P resume · N new run", core.ColorWhite)
	s.DrawTextColor(x+(w-8)/2, y+4, "ESC menu", core.ColorGray)
}
