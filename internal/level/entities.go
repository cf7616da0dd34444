package level

import "github.com/vovakirdan/autoscroller/internal/core"

// PlatformKind distinguishes floor segments from route platforms.
type PlatformKind int

const (
	KindFloor PlatformKind = iota
	KindPlatform
)

// Texture is the surface skin of a platform. Rendering picks the glyphs.
type Texture int

const (
	TextureStandard Texture = iota
	TextureBranded
)

// Platform is a walkable surface.
type Platform struct {
	ID      int
	X, Y    float64
	Width   float64
	Height  float64
	Kind    PlatformKind
	Texture Texture
}

// Bounds returns the platform's bounding box.
func (p Platform) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// HazardKind distinguishes ground hazards from overhead ones.
type HazardKind int

const (
	HazardGround   HazardKind = iota
	HazardOverhead            // cord hanging from a platform's underside
)

func (k HazardKind) String() string {
	if k == HazardOverhead {
		return "cord"
	}
	return "ground"
}

// Hazard damages the player on contact.
type Hazard struct {
	ID     int
	X, Y   float64
	Width  float64
	Height float64
	Kind   HazardKind
}

// Bounds returns the hazard's bounding box.
func (h Hazard) Bounds() core.Rect {
	return core.NewRect(h.X, h.Y, h.Width, h.Height)
}

// ItemTier is the size/value class of a terrain item.
type ItemTier int

const (
	TierA ItemTier = iota
	TierB
	TierC
)

func (t ItemTier) String() string {
	return [...]string{"a", "b", "c"}[t]
}

// Size returns the item edge length for the tier.
func (t ItemTier) Size() float64 {
	switch t {
	case TierB:
		return 25
	case TierC:
		return 30
	default:
		return 20
	}
}

// Item is a terrain-bound collectible.
type Item struct {
	ID        int
	X, Y      float64
	Width     float64
	Height    float64
	Tier      ItemTier
	Points    int
	Collected bool
}

// Bounds returns the item's bounding box.
func (i Item) Bounds() core.Rect {
	return core.NewRect(i.X, i.Y, i.Width, i.Height)
}
