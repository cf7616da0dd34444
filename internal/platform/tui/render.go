package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/game"
	"github.com/vovakirdan/autoscroller/internal/level"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightCyan: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var specialGlyphs = map[game.SpecialKind]rune{
	game.SpecialHeart:   '♥',
	game.SpecialScrew:   '*',
	game.SpecialChip:    '#',
	game.SpecialBattery: '+',
	game.SpecialAntenna: 'Y',
	game.SpecialToolbox: 'T',
	game.SpecialScanner: 'S',
	game.SpecialTimer:   '%',
	game.SpecialTurbo:   '>',
}

var itemGlyphs = map[level.ItemTier]rune{
	level.TierA: 'o',
	level.TierB: 'O',
	level.TierC: '$',
}

// viewport maps world units onto the screen rows below the HUD.
type viewport struct {
	top, rows int
	sx, sy    float64
}

func newViewport(s *core.Screen, worldW, worldH float64) viewport {
	rows := max(s.Height()-1, 1)
	return viewport{
		top:  1,
		rows: rows,
		sx:   float64(s.Width()) / worldW,
		sy:   float64(rows) / worldH,
	}
}

// fill paints r, covering at least one cell, clipped to the world rows.
func (v viewport) fill(s *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Floor(r.Right() * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	y1 := int(math.Floor(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	y0 = max(y0, 0)
	y1 = min(y1, v.rows)
	if y1 <= y0 {
		return
	}
	s.FillRect(x0, v.top+y0, x1-x0, y1-y0, ch, c)
}

// DrawWorld renders the snapshot into the screen: HUD on the first row and
// the world below it.
func DrawWorld(s *core.Screen, snap game.Snapshot, worldW, worldH float64) {
	s.Clear()
	v := newViewport(s, worldW, worldH)

	for _, p := range snap.Platforms {
		ch, c := '=', core.ColorGreen
		switch {
		case p.Kind == level.KindFloor:
			ch, c = '▀', core.ColorGray
		case p.Texture == level.TextureBranded:
			c = core.ColorCyan
		}
		v.fill(s, p.Bounds(), ch, c)
	}
	for _, h := range snap.Hazards {
		if h.Kind == level.HazardOverhead {
			v.fill(s, h.Bounds(), '|', core.ColorMagenta)
			continue
		}
		v.fill(s, h.Bounds(), '^', core.ColorRed)
	}
	for _, it := range snap.Items {
		if it.Collected {
			continue
		}
		v.fill(s, it.Bounds(), itemGlyphs[it.Tier], core.ColorYellow)
	}
	for _, sp := range snap.Specials {
		v.fill(s, sp.Bounds(), specialGlyphs[sp.Kind], core.ColorOrange)
	}

	p := snap.Player
	v.fill(s, core.NewRect(p.X, p.Y, p.Width, p.Height), '█', playerColor(snap))

	drawHUD(s, snap)
}

func playerColor(snap game.Snapshot) core.Color {
	switch {
	case snap.HitFlash:
		return core.ColorBrightRed
	case snap.Shielded:
		return core.ColorBrightCyan
	case snap.Invulnerable && (snap.Elapsed/(100*time.Millisecond))%2 == 1:
		return core.ColorGray
	default:
		return core.ColorWhite
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	lives := strings.Repeat("♥", snap.Lives) + strings.Repeat("·", max(snap.MaxLives-snap.Lives, 0))
	x := 0
	put := func(text string, c core.Color) {
		s.DrawTextColor(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	put(fmt.Sprintf("SCORE %06d", snap.Score), core.ColorWhite)
	put(lives, core.ColorRed)
	put(snap.Tier.String(), core.ColorGray)
	for _, e := range snap.Effects {
		if e.Kind == game.EffectHitFlash || e.Kind == game.EffectInvulnerable {
			continue
		}
		put(fmt.Sprintf("%s %.1fs", strings.ToUpper(e.Kind.String()), e.Remaining.Seconds()), core.ColorYellow)
	}
}
