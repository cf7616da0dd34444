package game

import "github.com/vovakirdan/autoscroller/internal/core"

// SpecialKind is the type of an independently spawned special item.
type SpecialKind int

const (
	SpecialHeart   SpecialKind = iota // restore one life
	SpecialScrew                      // flat score bonus
	SpecialChip                       // flat score bonus
	SpecialBattery                    // flat score bonus
	SpecialAntenna                    // score multiplier window
	SpecialToolbox                    // restore one life and multiplier window
	SpecialScanner                    // shield window
	SpecialTimer                      // slow-motion window
	SpecialTurbo                      // speed-up window
)

var specialNames = [...]string{
	SpecialHeart:   "heart",
	SpecialScrew:   "screw",
	SpecialChip:    "chip",
	SpecialBattery: "battery",
	SpecialAntenna: "antenna",
	SpecialToolbox: "toolbox",
	SpecialScanner: "scanner",
	SpecialTimer:   "timer",
	SpecialTurbo:   "turbo",
}

func (k SpecialKind) String() string {
	if k < 0 || int(k) >= len(specialNames) {
		return "unknown"
	}
	return specialNames[k]
}

// spawnTable is sampled uniformly; duplicates weight a kind.
var spawnTable = []SpecialKind{
	SpecialBattery, SpecialBattery,
	SpecialAntenna, SpecialAntenna,
	SpecialChip,
	SpecialHeart,
	SpecialScrew,
	SpecialToolbox,
	SpecialScanner,
	SpecialTimer,
	SpecialTurbo,
}

// SpecialItem is a collectible spawned on its own timer, independent of
// terrain patterns.
type SpecialItem struct {
	ID        int
	X, Y      float64
	Width     float64
	Height    float64
	Kind      SpecialKind
	Collected bool
}

// Bounds returns the item's bounding box.
func (s SpecialItem) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// spawnSpecial attempts to add one special item on a random lane.
func (g *Game) spawnSpecial() {
	sc := g.cfg.Specials
	if g.rng.Float64() >= sc.SpawnChance || len(sc.Lanes) == 0 {
		return
	}
	lane := sc.Lanes[g.rng.Intn(len(sc.Lanes))]
	kind := spawnTable[g.rng.Intn(len(spawnTable))]

	g.nextSpecialID++
	item := SpecialItem{
		ID:     g.nextSpecialID,
		X:      g.rt.WorldW + sc.SpawnOffset,
		Y:      lane,
		Width:  sc.Size,
		Height: sc.Size,
		Kind:   kind,
	}
	g.specials = append(g.specials, item)
	g.emit(Event{Kind: EventSpecialSpawned, Special: kind, ItemID: item.ID})
}

// updateSpecials scrolls special items with the world and culls the ones
// that left the view or were collected.
func (g *Game) updateSpecials(worldScale float64) {
	sc := g.cfg.Specials
	step := sc.SpeedFactor * worldScale

	kept := g.specials[:0]
	for _, s := range g.specials {
		s.X -= step
		if s.X > sc.CullX && !s.Collected {
			kept = append(kept, s)
		}
	}
	g.specials = kept
}

// applySpecial runs the pickup consequence of a special item.
func (g *Game) applySpecial(k SpecialKind) {
	now := g.clock.Now()
	sc := g.cfg.Scoring
	switch k {
	case SpecialHeart:
		g.restoreLife()
	case SpecialScrew:
		g.addScore(sc.Screw)
	case SpecialChip:
		g.addScore(sc.Chip)
	case SpecialBattery:
		g.addScore(sc.Battery)
	case SpecialAntenna:
		g.startEffect(EffectMultiplier, now)
	case SpecialToolbox:
		g.restoreLife()
		g.startEffect(EffectMultiplier, now)
	case SpecialScanner:
		g.startEffect(EffectShield, now)
	case SpecialTimer:
		g.startEffect(EffectSlowMotion, now)
	case SpecialTurbo:
		g.startEffect(EffectSpeedUp, now)
	}
}

func (g *Game) restoreLife() {
	if g.lives >= g.cfg.Gameplay.MaxLives {
		return
	}
	g.lives++
	g.emit(Event{Kind: EventLifeRestored, Lives: g.lives})
}
