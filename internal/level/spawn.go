package level

import (
	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/pattern"
)

// spawnNextPattern places one pattern past the frontier. The first pattern
// after InitLevel is the tutorial, placed flush with the frontier.
func (l *Level) spawnNextPattern() {
	if l.lib.Len() == 0 {
		return
	}
	seconds := l.ElapsedSeconds()

	var tmpl pattern.Pattern
	var gap float64
	first := l.first
	if first {
		tmpl = l.tutorial()
		l.first = false
	} else {
		tmpl = l.selectWeighted(seconds)
		lo, hi := l.curve.GapRange(seconds)
		gap = lo + float64(l.rng.Intn(int(hi-lo)+1))
	}

	startX := l.frontier + gap
	place := Placement{
		PatternID:  tmpl.ID,
		Difficulty: tmpl.Difficulty,
		StartX:     startX,
		Gap:        gap,
		Width:      tmpl.Width,
	}

	if !first && l.needsConnector(tmpl, gap) {
		cw := l.cfg.Connector.Width
		l.addPlatform(l.frontier+gap/2-cw/2, l.cfg.Routes.Low, cw)
		place.Connector = true
	}

	for _, def := range tmpl.Platforms {
		if l.rng.Float64() > def.Probability {
			continue
		}
		l.addPlatform(startX+def.XOffset, l.routeY(def.Route, def.YOffset), def.Width)
	}

	place.Sockets, place.Forced = l.resolveSockets(tmpl, startX, seconds)
	l.scanAmbient(tmpl, startX, seconds)

	l.frontier = startX + tmpl.Width
	l.placed++
	l.last = place
}

func (l *Level) tutorial() pattern.Pattern {
	if p, ok := l.lib.Get(l.cfg.TutorialPattern); ok {
		return p
	}
	return l.lib.At(0)
}

// selectWeighted rolls a tier from the difficulty weights and picks a
// pattern of that tier uniformly, falling back to the full catalog.
func (l *Level) selectWeighted(seconds float64) pattern.Pattern {
	target := l.curve.Pick(seconds, l.rng.Float64()*100)
	if n := l.lib.CountByDifficulty(target); n > 0 {
		return l.lib.ByDifficulty(target, l.rng.Intn(n))
	}
	return l.lib.At(l.rng.Intn(l.lib.Len()))
}

// needsConnector reports whether a bridging platform is required: the gap
// is too wide, or the pattern has no low entry near its start.
func (l *Level) needsConnector(p pattern.Pattern, gap float64) bool {
	if gap > l.cfg.Connector.GapThreshold {
		return true
	}
	for _, def := range p.Platforms {
		if def.Route == pattern.RouteLow && def.XOffset < l.cfg.Connector.ReachX {
			return false
		}
	}
	return true
}

// routeY maps a route onto its surface height.
func (l *Level) routeY(r pattern.Route, yOffset float64) float64 {
	routes := l.cfg.Routes
	if r == pattern.RouteFloor || yOffset > routes.FloorThreshold {
		return routes.Floor
	}
	switch r {
	case pattern.RouteTop:
		return routes.Top
	case pattern.RouteMid:
		return routes.Mid
	default:
		return routes.Low
	}
}

// resolveSockets evaluates every socket of the pattern against nominal
// geometry. It returns the committed count and whether a hazard had to be
// forced to meet the minimum.
func (l *Level) resolveSockets(p pattern.Pattern, startX, seconds float64) (int, bool) {
	tier := l.curve.Tier(seconds)
	minimum := l.curve.MinSockets(tier)

	count := 0
	for _, s := range p.Sockets {
		if s.MinDifficulty > tier {
			continue
		}
		roll := l.rng.Float64()
		if roll >= s.Probability && count >= minimum {
			continue
		}
		if l.placeSocket(s, startX) {
			count++
		}
	}

	if count < minimum {
		l.addHazard(startX+p.Width/2, l.floorY()-l.cfg.HazardSize, HazardGround)
		return count, true
	}
	return count, false
}

// placeSocket materializes one socket. Item sockets are skipped when their
// padded box overlaps placed geometry.
func (l *Level) placeSocket(s pattern.SocketDef, startX float64) bool {
	x := startX + s.XOffset
	surface := s.YOffset

	switch s.Kind {
	case pattern.KindHazard:
		if s.Subtype == pattern.SubtypeCord {
			y := surface + l.cfg.PlatformHeight
			if p, ok := l.platformAbove(x, surface); ok {
				y = p.Y + p.Height
			}
			l.addHazard(x, y, HazardOverhead)
			return true
		}
		l.addHazard(x, surface-l.cfg.HazardSize, HazardGround)
		return true

	case pattern.KindItem:
		tier := tierOf(s.Subtype)
		size := tier.Size()
		box := core.NewRect(x, surface-size-l.cfg.ItemLift, size, size)
		if l.blocked(box.Inflate(l.cfg.ItemPadding)) {
			return false
		}
		l.items = append(l.items, Item{
			ID:     l.id(),
			X:      box.X,
			Y:      box.Y,
			Width:  size,
			Height: size,
			Tier:   tier,
			Points: l.points(tier),
		})
		return true
	}
	return false
}

func tierOf(subtype string) ItemTier {
	switch subtype {
	case pattern.SubtypeItemB:
		return TierB
	case pattern.SubtypeItemC:
		return TierC
	default:
		return TierA
	}
}

func (l *Level) points(t ItemTier) int {
	switch t {
	case TierB:
		return l.scoring.ItemB
	case TierC:
		return l.scoring.ItemC
	default:
		return l.scoring.ItemA
	}
}

// platformAbove finds the nearest live platform whose underside is at least
// the overhead clearance above surface and whose span covers x.
func (l *Level) platformAbove(x, surface float64) (Platform, bool) {
	limit := surface - l.cfg.OverheadClearance
	var best Platform
	found := false
	for _, p := range l.platforms {
		if x < p.X || x > p.X+p.Width {
			continue
		}
		bottom := p.Y + p.Height
		if bottom > limit {
			continue
		}
		if !found || bottom > best.Y+best.Height {
			best, found = p, true
		}
	}
	return best, found
}

// blocked reports whether box overlaps any platform, hazard, or item.
func (l *Level) blocked(box core.Rect) bool {
	for _, p := range l.platforms {
		if box.Intersects(p.Bounds()) {
			return true
		}
	}
	for _, h := range l.hazards {
		if box.Intersects(h.Bounds()) {
			return true
		}
	}
	for _, it := range l.items {
		if box.Intersects(it.Bounds()) {
			return true
		}
	}
	return false
}

// scanAmbient seeds extra ground hazards along open floor under the
// pattern. It is disabled early in a run.
func (l *Level) scanAmbient(p pattern.Pattern, startX, seconds float64) {
	amb := l.cfg.Ambient
	if seconds < amb.Delay || amb.Step <= 0 {
		return
	}
	y := l.floorY() - l.cfg.HazardSize
	size := l.cfg.HazardSize

	for x := startX + amb.Margin; x < startX+p.Width-amb.Margin; x += amb.Step {
		if l.rng.Float64() >= amb.Chance {
			continue
		}
		if !overheadClear(x-startX, p.Platforms) {
			continue
		}
		if l.nearHazard(core.NewRect(x, y, size, size), amb.Buffer) {
			continue
		}
		l.addHazard(x, y, HazardGround)
	}
}

// overheadClear reports whether no LOW or MID platform def spans the
// pattern-relative x.
func overheadClear(relX float64, defs []pattern.PlatformDef) bool {
	for _, d := range defs {
		if relX < d.XOffset || relX > d.XOffset+d.Width {
			continue
		}
		if d.Route == pattern.RouteLow || d.Route == pattern.RouteMid {
			return false
		}
	}
	return true
}

func (l *Level) nearHazard(box core.Rect, buffer float64) bool {
	for _, h := range l.hazards {
		b := h.Bounds()
		if box.X < b.Right()+buffer && box.Right()+buffer > b.X &&
			box.Y < b.Bottom()+buffer && box.Bottom()+buffer > b.Y {
			return true
		}
	}
	return false
}
