package pattern

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyCatalog is returned when a catalog source defines no patterns.
var ErrEmptyCatalog = errors.New("pattern: catalog is empty")

// Library is an immutable, indexed pattern catalog.
type Library struct {
	patterns []Pattern
	byID     map[string]int
	byTier   map[Difficulty][]int
}

// NewLibrary validates the patterns and indexes them by id and difficulty.
// An empty slice yields an empty library; the generator then degrades to
// bare floor.
func NewLibrary(patterns []Pattern) (*Library, error) {
	lib := &Library{
		byID:   make(map[string]int, len(patterns)),
		byTier: make(map[Difficulty][]int),
	}
	for i, p := range patterns {
		if err := Validate(p); err != nil {
			return nil, err
		}
		if _, dup := lib.byID[p.ID]; dup {
			return nil, fmt.Errorf("pattern: duplicate id %q", p.ID)
		}
		lib.patterns = append(lib.patterns, p.Clone())
		lib.byID[p.ID] = i
		lib.byTier[p.Difficulty] = append(lib.byTier[p.Difficulty], i)
	}
	return lib, nil
}

// Len returns the number of patterns.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}

// Get returns the pattern with the given id.
func (l *Library) Get(id string) (Pattern, bool) {
	if l == nil {
		return Pattern{}, false
	}
	i, ok := l.byID[id]
	if !ok {
		return Pattern{}, false
	}
	return l.patterns[i].Clone(), true
}

// At returns the i-th pattern in catalog order.
func (l *Library) At(i int) Pattern {
	return l.patterns[i].Clone()
}

// CountByDifficulty returns how many patterns carry the tier.
func (l *Library) CountByDifficulty(d Difficulty) int {
	if l == nil {
		return 0
	}
	return len(l.byTier[d])
}

// ByDifficulty returns the n-th pattern of the tier in catalog order.
func (l *Library) ByDifficulty(d Difficulty, n int) Pattern {
	return l.patterns[l.byTier[d][n]].Clone()
}

// All returns copies of every pattern in catalog order.
func (l *Library) All() []Pattern {
	if l == nil {
		return nil
	}
	out := make([]Pattern, len(l.patterns))
	for i, p := range l.patterns {
		out[i] = p.Clone()
	}
	return out
}

// IDs returns the sorted pattern ids.
func (l *Library) IDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, 0, len(l.byID))
	for id := range l.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks a single pattern for values the generator cannot place.
func Validate(p Pattern) error {
	if p.ID == "" {
		return errors.New("pattern: missing id")
	}
	if p.Width <= 0 {
		return fmt.Errorf("pattern %s: width must be positive", p.ID)
	}
	if p.Difficulty < Easy || p.Difficulty > Hard {
		return fmt.Errorf("pattern %s: invalid difficulty %d", p.ID, int(p.Difficulty))
	}
	for i, pd := range p.Platforms {
		if pd.Width <= 0 {
			return fmt.Errorf("pattern %s: platform %d width must be positive", p.ID, i)
		}
		if pd.Probability < 0 || pd.Probability > 1 {
			return fmt.Errorf("pattern %s: platform %d probability out of range", p.ID, i)
		}
		switch pd.Route {
		case RouteTop, RouteMid, RouteLow, RouteFloor:
		default:
			return fmt.Errorf("pattern %s: platform %d unknown route %q", p.ID, i, pd.Route)
		}
	}
	for i, s := range p.Sockets {
		if s.Probability < 0 || s.Probability > 1 {
			return fmt.Errorf("pattern %s: socket %d probability out of range", p.ID, i)
		}
		if s.XOffset < 0 || s.XOffset > p.Width {
			return fmt.Errorf("pattern %s: socket %d outside pattern width", p.ID, i)
		}
		switch {
		case s.Kind == KindHazard && (s.Subtype == SubtypeCord || s.Subtype == SubtypeGround):
		case s.Kind == KindItem && (s.Subtype == SubtypeItemA || s.Subtype == SubtypeItemB || s.Subtype == SubtypeItemC):
		default:
			return fmt.Errorf("pattern %s: socket %d invalid kind %q/%q", p.ID, i, s.Kind, s.Subtype)
		}
		if s.MinDifficulty < Easy || s.MinDifficulty > Hard {
			return fmt.Errorf("pattern %s: socket %d invalid min difficulty", p.ID, i)
		}
	}
	return nil
}
