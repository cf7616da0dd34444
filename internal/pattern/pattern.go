// Package pattern defines terrain templates for the world generator and the
// built-in catalog of them. Patterns are immutable data: the generator reads
// them and never mutates them.
package pattern

import (
	"fmt"
	"strings"
)

// Difficulty tags a pattern and gates sockets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the upper-case tier name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts a tier name (case-insensitive) into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	default:
		return 0, fmt.Errorf("pattern: unknown difficulty %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Route is one of the fixed walkable heights.
type Route string

const (
	RouteTop   Route = "TOP"
	RouteMid   Route = "MID"
	RouteLow   Route = "LOW"
	RouteFloor Route = "FLOOR"
)

// SocketKind distinguishes hazard sockets from item sockets.
type SocketKind string

const (
	KindHazard SocketKind = "hazard"
	KindItem   SocketKind = "item"
)

// Socket subtypes.
const (
	SubtypeCord   = "cord"   // overhead hazard hanging below a platform
	SubtypeGround = "ground" // hazard sitting on a surface
	SubtypeItemA  = "a"
	SubtypeItemB  = "b"
	SubtypeItemC  = "c"
)

// PlatformDef is a platform placement relative to the pattern origin.
// YOffset is the nominal surface height; Route decides the real one.
type PlatformDef struct {
	XOffset     float64 `yaml:"x"`
	YOffset     float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Route       Route   `yaml:"route"`
	Probability float64 `yaml:"probability"`
}

// SocketDef is a candidate hazard or item attachment point. Sockets are
// resolved against the pattern's nominal geometry, not against which
// optional platforms were realized.
type SocketDef struct {
	XOffset       float64    `yaml:"x"`
	YOffset       float64    `yaml:"y"`
	Kind          SocketKind `yaml:"kind"`
	Subtype       string     `yaml:"subtype"`
	Probability   float64    `yaml:"probability"`
	MinDifficulty Difficulty `yaml:"min_difficulty"`
}

// Pattern is a fixed-width terrain template.
type Pattern struct {
	ID         string        `yaml:"id"`
	Difficulty Difficulty    `yaml:"difficulty"`
	Width      float64       `yaml:"width"`
	Platforms  []PlatformDef `yaml:"platforms"`
	Sockets    []SocketDef   `yaml:"sockets"`
}

// Clone returns a deep copy so callers cannot alter catalog data.
func (p Pattern) Clone() Pattern {
	c := p
	c.Platforms = append([]PlatformDef(nil), p.Platforms...)
	c.Sockets = append([]SocketDef(nil), p.Sockets...)
	return c
}
