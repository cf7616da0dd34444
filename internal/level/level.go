// Package level implements the world generator: it owns the live
// platforms, hazards, and items, scrolls them, and appends terrain from the
// pattern catalog as the frontier approaches the right edge of the view.
package level

import (
	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/pattern"
)

// Placement records where the most recent pattern was put.
type Placement struct {
	PatternID  string
	Difficulty pattern.Difficulty
	StartX     float64
	Gap        float64
	Width      float64
	Connector  bool
	Sockets    int // content sockets committed
	Forced     bool
}

// Level is the world generator.
type Level struct {
	cfg     config.WorldConfig
	scoring config.ScoringConfig
	curve   Curve
	lib     *pattern.Library
	rng     Rand

	tickRate int
	width    float64
	height   float64

	platforms []Platform
	hazards   []Hazard
	items     []Item

	nextID   int
	frames   int
	frontier float64
	first    bool
	placed   int
	last     Placement
}

// New creates a generator. The runtime config supplies the tick rate and
// the seed; call InitLevel before the first Update.
func New(cfg config.RunnerConfig, lib *pattern.Library, rt core.RuntimeConfig) *Level {
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Level{
		cfg:      cfg.World,
		scoring:  cfg.Scoring,
		curve:    NewCurve(cfg.Difficulty),
		lib:      lib,
		rng:      NewRand(rt.Seed),
		tickRate: tickRate,
	}
}

// SetRand replaces the randomness source.
func (l *Level) SetRand(r Rand) {
	l.rng = r
}

// Reset reseeds the generator and reinitializes the level.
func (l *Level) Reset(seed int64, width, height float64) {
	l.rng = NewRand(seed)
	l.InitLevel(width, height)
}

// InitLevel clears every live entity, rewinds the cursor and timer, and
// lays one floor segment spanning the view plus a buffer.
func (l *Level) InitLevel(width, height float64) {
	l.width = width
	l.height = height
	l.platforms = nil
	l.hazards = nil
	l.items = nil
	l.nextID = 1
	l.frames = 0
	l.placed = 0
	l.last = Placement{}
	l.first = true
	l.frontier = width

	l.addFloor(0, width+l.cfg.InitialFloorBuffer)
}

// Update advances one frame: the world scrolls left by the scroll speed
// scaled by timeScale, off-screen entities are culled, and the floor and
// terrain frontier are replenished.
func (l *Level) Update(width, height, timeScale float64) {
	l.frames++

	step := l.cfg.ScrollSpeed * timeScale
	for i := range l.platforms {
		l.platforms[i].X -= step
	}
	for i := range l.hazards {
		l.hazards[i].X -= step
	}
	for i := range l.items {
		l.items[i].X -= step
	}
	l.frontier -= step

	l.cull()
	l.maintainFloor(width)
	if l.frontier < width+l.cfg.SpawnLookahead {
		l.spawnNextPattern()
	}
}

func (l *Level) cull() {
	margin := -l.cfg.CullMargin

	platforms := l.platforms[:0]
	for _, p := range l.platforms {
		if p.X+p.Width > margin {
			platforms = append(platforms, p)
		}
	}
	l.platforms = platforms

	hazards := l.hazards[:0]
	for _, h := range l.hazards {
		if h.X+h.Width > margin {
			hazards = append(hazards, h)
		}
	}
	l.hazards = hazards

	items := l.items[:0]
	for _, it := range l.items {
		if it.X > margin && !it.Collected {
			items = append(items, it)
		}
	}
	l.items = items
}

// maintainFloor appends a floor segment when the rightmost floor end comes
// within the lookahead of the right edge.
func (l *Level) maintainFloor(width float64) {
	end, found := 0.0, false
	for _, p := range l.platforms {
		if p.Kind != KindFloor {
			continue
		}
		if !found || p.X+p.Width > end {
			end = p.X + p.Width
			found = true
		}
	}
	if found && end >= width+l.cfg.FloorLookahead {
		return
	}
	l.addFloor(end, l.cfg.FloorSegmentWidth)
}

// floorY is the top of the floor segments.
func (l *Level) floorY() float64 {
	return l.height - l.cfg.FloorHeight
}

func (l *Level) id() int {
	id := l.nextID
	l.nextID++
	return id
}

func (l *Level) addFloor(x, width float64) {
	l.platforms = append(l.platforms, Platform{
		ID:      l.id(),
		X:       x,
		Y:       l.floorY(),
		Width:   width,
		Height:  l.cfg.FloorHeight,
		Kind:    KindFloor,
		Texture: TextureStandard,
	})
}

func (l *Level) addPlatform(x, y, width float64) {
	tex := TextureStandard
	if l.rng.Float64() < 0.5 {
		tex = TextureBranded
	}
	l.platforms = append(l.platforms, Platform{
		ID:      l.id(),
		X:       x,
		Y:       y,
		Width:   width,
		Height:  l.cfg.PlatformHeight,
		Kind:    KindPlatform,
		Texture: tex,
	})
}

func (l *Level) addHazard(x, y float64, kind HazardKind) {
	l.hazards = append(l.hazards, Hazard{
		ID:     l.id(),
		X:      x,
		Y:      y,
		Width:  l.cfg.HazardSize,
		Height: l.cfg.HazardSize,
		Kind:   kind,
	})
}

// Platforms returns the live platforms in generation order.
// The slice is read-only for callers.
func (l *Level) Platforms() []Platform {
	return l.platforms
}

// Hazards returns the live hazards. The slice is read-only for callers.
func (l *Level) Hazards() []Hazard {
	return l.hazards
}

// Items returns the live items. The slice is read-only for callers.
func (l *Level) Items() []Item {
	return l.items
}

// PlatformBounds returns the platforms as collision rectangles, in order.
func (l *Level) PlatformBounds() []core.Rect {
	rects := make([]core.Rect, len(l.platforms))
	for i, p := range l.platforms {
		rects[i] = p.Bounds()
	}
	return rects
}

// CollectItem flags the item collected and returns it. It reports false if
// the item is unknown or was already collected.
func (l *Level) CollectItem(id int) (Item, bool) {
	for i := range l.items {
		if l.items[i].ID != id {
			continue
		}
		if l.items[i].Collected {
			return Item{}, false
		}
		l.items[i].Collected = true
		return l.items[i], true
	}
	return Item{}, false
}

// Frontier returns the x up to which terrain has been generated.
func (l *Level) Frontier() float64 {
	return l.frontier
}

// ElapsedSeconds returns the simulated run time driving difficulty.
func (l *Level) ElapsedSeconds() float64 {
	return float64(l.frames) / float64(l.tickRate)
}

// Tier returns the current difficulty label.
func (l *Level) Tier() pattern.Difficulty {
	return l.curve.Tier(l.ElapsedSeconds())
}

// PatternsPlaced returns how many patterns were placed since InitLevel.
func (l *Level) PatternsPlaced() int {
	return l.placed
}

// LastPlacement returns the most recent pattern placement.
func (l *Level) LastPlacement() Placement {
	return l.last
}
