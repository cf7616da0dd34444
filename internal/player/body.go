// Package player implements the runner's physics body: gravity, horizontal
// movement, and one-way landing on platforms.
package player

import (
	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/core"
)

// State is a read-only snapshot of the body.
type State struct {
	X, Y      float64
	Width     float64
	Height    float64
	VelocityX float64
	VelocityY float64
	OnGround  bool
	Jumping   bool
}

// Body is the player's physics body. It is mutated only through its methods.
type Body struct {
	x, y      float64
	vx, vy    float64
	onGround  bool
	jumping   bool
	cfg       config.PhysicsConfig
	worldW    float64
	worldH    float64
	platforms []core.Rect
}

// New creates a body at (x, y) inside a world of the given size.
func New(x, y, worldW, worldH float64, cfg config.PhysicsConfig) *Body {
	return &Body{
		x:      x,
		y:      y,
		cfg:    cfg,
		worldW: worldW,
		worldH: worldH,
	}
}

// SetPlatforms replaces the collision candidates. Order is significant:
// the first platform that catches the body wins.
func (b *Body) SetPlatforms(platforms []core.Rect) {
	b.platforms = platforms
}

// MoveLeft sets leftward velocity.
func (b *Body) MoveLeft() { b.vx = -b.cfg.MoveSpeed }

// MoveRight sets rightward velocity.
func (b *Body) MoveRight() { b.vx = b.cfg.MoveSpeed }

// Stop clears horizontal velocity.
func (b *Body) Stop() { b.vx = 0 }

// Jump launches the body upward. It does nothing unless the body is grounded.
func (b *Body) Jump() {
	if !b.onGround {
		return
	}
	b.vy = -b.cfg.JumpPower
	b.jumping = true
	b.onGround = false
}

// Update integrates one tick scaled by timeScale, then resolves platform
// landing and the world bounds.
func (b *Body) Update(timeScale float64) {
	b.vy += b.cfg.Gravity * timeScale
	if b.vy > b.cfg.MaxFallSpeed {
		b.vy = b.cfg.MaxFallSpeed
	}

	b.x += b.vx * timeScale
	b.y += b.vy * timeScale

	b.land()

	// Canvas floor catches the body when no platform did.
	if b.y+b.cfg.Height >= b.worldH {
		b.y = b.worldH - b.cfg.Height
		b.vy = 0
		b.onGround = true
		b.jumping = false
	}

	b.x = core.ClampF(b.x, 0, b.worldW-b.cfg.Width)
}

// land snaps the body onto the first platform whose top lies within the
// landing threshold below the body's feet. Rising bodies pass through.
func (b *Body) land() {
	b.onGround = false
	if b.vy < 0 {
		return
	}

	bottom := b.y + b.cfg.Height
	for _, p := range b.platforms {
		if b.x+b.cfg.Width <= p.X || b.x >= p.Right() {
			continue
		}
		if bottom >= p.Y && bottom <= p.Y+b.cfg.LandingThreshold {
			b.y = p.Y - b.cfg.Height
			b.vy = 0
			b.onGround = true
			b.jumping = false
			return
		}
	}
}

// Reset restores the spawn position and clears motion state.
func (b *Body) Reset() {
	b.x = b.cfg.SpawnX
	b.y = b.cfg.SpawnY
	b.vx = 0
	b.vy = 0
	b.onGround = false
	b.jumping = false
}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() core.Rect {
	return core.NewRect(b.x, b.y, b.cfg.Width, b.cfg.Height)
}

// OnGround reports whether the body is standing on a surface.
func (b *Body) OnGround() bool {
	return b.onGround
}

// State returns a snapshot of the body.
func (b *Body) State() State {
	return State{
		X:         b.x,
		Y:         b.y,
		Width:     b.cfg.Width,
		Height:    b.cfg.Height,
		VelocityX: b.vx,
		VelocityY: b.vy,
		OnGround:  b.onGround,
		Jumping:   b.jumping,
	}
}
