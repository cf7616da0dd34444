package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a custom catalog:
//
//	patterns:
//	  - id: p1
//	    difficulty: EASY
//	    width: 800
//	    platforms:
//	      - { x: 0, y: 260, width: 200, route: LOW }
//	    sockets:
//	      - { x: 100, y: 260, kind: hazard, subtype: cord, probability: 0.5 }
type catalogFile struct {
	Patterns []patternYAML `yaml:"patterns"`
}

// patternYAML mirrors Pattern with optional probabilities, which default to 1.
type patternYAML struct {
	ID         string     `yaml:"id"`
	Difficulty Difficulty `yaml:"difficulty"`
	Width      float64    `yaml:"width"`
	Platforms  []struct {
		X           float64  `yaml:"x"`
		Y           float64  `yaml:"y"`
		Width       float64  `yaml:"width"`
		Route       Route    `yaml:"route"`
		Probability *float64 `yaml:"probability"`
	} `yaml:"platforms"`
	Sockets []struct {
		X             float64    `yaml:"x"`
		Y             float64    `yaml:"y"`
		Kind          SocketKind `yaml:"kind"`
		Subtype       string     `yaml:"subtype"`
		Probability   *float64   `yaml:"probability"`
		MinDifficulty Difficulty `yaml:"min_difficulty"`
	} `yaml:"sockets"`
}

func probOrOne(p *float64) float64 {
	if p == nil {
		return 1
	}
	return *p
}

// Parse decodes a YAML catalog. A catalog without patterns is ErrEmptyCatalog.
func Parse(data []byte) (*Library, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pattern: cannot parse catalog: %w", err)
	}
	if len(f.Patterns) == 0 {
		return nil, ErrEmptyCatalog
	}

	patterns := make([]Pattern, 0, len(f.Patterns))
	for _, py := range f.Patterns {
		p := Pattern{ID: py.ID, Difficulty: py.Difficulty, Width: py.Width}
		for _, pd := range py.Platforms {
			route := pd.Route
			if route == "" {
				route = RouteLow
			}
			p.Platforms = append(p.Platforms, PlatformDef{
				XOffset:     pd.X,
				YOffset:     pd.Y,
				Width:       pd.Width,
				Route:       route,
				Probability: probOrOne(pd.Probability),
			})
		}
		for _, s := range py.Sockets {
			p.Sockets = append(p.Sockets, SocketDef{
				XOffset:       s.X,
				YOffset:       s.Y,
				Kind:          s.Kind,
				Subtype:       s.Subtype,
				Probability:   probOrOne(s.Probability),
				MinDifficulty: s.MinDifficulty,
			})
		}
		patterns = append(patterns, p)
	}
	return NewLibrary(patterns)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: cannot read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes a library in the catalog file layout.
func Marshal(lib *Library) ([]byte, error) {
	out := struct {
		Patterns []Pattern `yaml:"patterns"`
	}{Patterns: lib.All()}
	return yaml.Marshal(out)
}
