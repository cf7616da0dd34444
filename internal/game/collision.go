package game

// collideItems awards terrain items the player touches. Collected items are
// skipped, so a pickup can never be awarded twice.
func (g *Game) collideItems() {
	box := g.body.Bounds()
	for _, it := range g.level.Items() {
		if it.Collected || !box.Intersects(it.Bounds()) {
			continue
		}
		item, ok := g.level.CollectItem(it.ID)
		if !ok {
			continue
		}
		g.addScore(item.Points)
		g.emit(Event{Kind: EventItemPickup, ItemID: item.ID, Points: item.Points, Total: g.score})
		g.sound(SoundItem)
	}
}

// collideSpecials applies and removes special items the player touches.
func (g *Game) collideSpecials() {
	box := g.body.Bounds()
	picked := false
	for i := range g.specials {
		s := &g.specials[i]
		if s.Collected || !box.Intersects(s.Bounds()) {
			continue
		}
		s.Collected = true
		picked = true
		g.emit(Event{Kind: EventSpecialPickup, ItemID: s.ID, Special: s.Kind})
		g.applySpecial(s.Kind)
		g.sound(SoundItem)
	}
	if !picked {
		return
	}
	kept := g.specials[:0]
	for _, s := range g.specials {
		if !s.Collected {
			kept = append(kept, s)
		}
	}
	g.specials = kept
}

// collideHazards runs the damage path for every hazard the player touches.
// The hazard hit-box is shrunk by the configured padding.
func (g *Game) collideHazards() {
	box := g.body.Bounds()
	pad := g.cfg.Gameplay.HazardPadding
	for _, h := range g.level.Hazards() {
		if !box.IntersectsPadded(h.Bounds(), pad) {
			continue
		}
		g.hit()
		if g.state != StateRunning {
			return
		}
	}
}

// hit always re-triggers the hit flash; damage only lands when neither the
// shield nor invulnerability is active.
func (g *Game) hit() {
	now := g.clock.Now()
	g.startEffect(EffectHitFlash, now)
	g.emit(Event{Kind: EventHitFlash})

	if g.effects.Active(EffectShield, now) || g.effects.Active(EffectInvulnerable, now) {
		return
	}

	g.sound(SoundHit)
	g.lives--
	g.startEffect(EffectInvulnerable, now)
	g.emit(Event{Kind: EventDamage, Lives: g.lives})
	g.log.Debug("player hit", "lives", g.lives)

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver()
	}
}
