package game

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventScore EventKind = iota
	EventItemPickup
	EventSpecialPickup
	EventSpecialSpawned
	EventLifeRestored
	EventDamage
	EventHitFlash
	EventSound
	EventEffectStarted
	EventEffectExpired
	EventStateChanged
	EventGameOver
)

var eventNames = [...]string{
	EventScore:          "score",
	EventItemPickup:     "item-pickup",
	EventSpecialPickup:  "special-pickup",
	EventSpecialSpawned: "special-spawned",
	EventLifeRestored:   "life-restored",
	EventDamage:         "damage",
	EventHitFlash:       "hit-flash",
	EventSound:          "sound",
	EventEffectStarted:  "effect-started",
	EventEffectExpired:  "effect-expired",
	EventStateChanged:   "state-changed",
	EventGameOver:       "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Sound is an audio cue for the host. Cues are rate-limited by the core.
type Sound int

const (
	SoundItem Sound = iota
	SoundHit
)

// Event is emitted for the UI and audio layers to react to. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Points  int // raw points before the multiplier
	Awarded int // points actually added
	Total   int // score after the event
	ItemID  int
	Special SpecialKind
	Effect  EffectKind
	Sound   Sound
	Lives   int
	From    State
	To      State
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns and clears the pending events.
func (g *Game) DrainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}
