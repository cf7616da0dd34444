// Package game implements the simulation orchestrator: the state machine,
// the per-tick driver, timed effects, collisions, and scoring.
//
// The package is host-agnostic. A host schedules two cancellable tasks, the
// frame driver and the special item spawn timer, and calls Tick and
// SpawnTick with the task tokens it was handed.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/level"
	"github.com/vovakirdan/autoscroller/internal/pattern"
	"github.com/vovakirdan/autoscroller/internal/player"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

// State is a state of the game's state machine.
type State int

const (
	StateMenu State = iota
	StateHelp
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateHelp:
		return "help"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Snapshot is the read-only view of the game exposed to hosts.
type Snapshot struct {
	State          State
	Score          int
	Lives          int
	MaxLives       int
	Player         player.State
	Platforms      []level.Platform
	Hazards        []level.Hazard
	Items          []level.Item
	Specials       []SpecialItem
	Effects        []ActiveEffect
	WorldScale     float64
	Elapsed        time.Duration
	Tier           pattern.Difficulty
	PatternsPlaced int

	Shielded     bool
	Invulnerable bool
	HitFlash     bool
	Multiplier   bool

	HelpSeen          bool
	Submitted         bool
	PersistenceFailed bool
	Leaderboard       []storage.HighScore
}

// StepResult is returned by Tick and SpawnTick.
type StepResult struct {
	// Ran is true when the callback advanced the simulation.
	Ran bool
	// Continue is true when the host should schedule the same task again
	// with the same token.
	Continue bool
	Events   []Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithStore sets the highscore collaborator.
func WithStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithRand sets the randomness used for special items.
func WithRand(r level.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// Game is the simulation orchestrator. It is single-threaded: every method
// must be called from the host's one update loop.
type Game struct {
	cfg   config.RunnerConfig
	rt    core.RuntimeConfig
	log   *log.Logger
	store ScoreStore
	rng   level.Rand

	state    State
	helpSeen bool
	closed   bool
	runs     int64

	level    *level.Level
	body     *player.Body
	specials []SpecialItem
	effects  *Effects
	clock    *core.SimClock
	tasks    lifecycle

	nextSpecialID int
	score         int
	lives         int
	worldScale    float64

	hitSoundAt  time.Duration
	hitSound    bool
	itemSoundAt time.Duration
	itemSound   bool

	submitted         bool
	persistenceFailed bool
	leaderboard       []storage.HighScore

	events []Event
}

// New creates a game in the menu state.
func New(cfg config.RunnerConfig, lib *pattern.Library, rt core.RuntimeConfig, opts ...Option) *Game {
	if rt.WorldW <= 0 || rt.WorldH <= 0 {
		rt.WorldW, rt.WorldH = core.WorldWidth, core.WorldHeight
	}
	g := &Game{
		cfg:        cfg,
		rt:         rt,
		log:        log.New(io.Discard),
		state:      StateMenu,
		level:      level.New(cfg, lib, rt),
		body:       player.New(cfg.Physics.SpawnX, cfg.Physics.SpawnY, rt.WorldW, rt.WorldH, cfg.Physics),
		effects:    NewEffects(cfg.Effects),
		clock:      core.NewSimClock(rt.TickRate),
		tasks:      newLifecycle(),
		lives:      cfg.Gameplay.Lives,
		worldScale: cfg.Effects.BaseWorldScale,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = level.NewRand(rt.Seed)
	}
	g.level.InitLevel(rt.WorldW, rt.WorldH)
	return g
}

// FrameTask returns the frame driver task.
func (g *Game) FrameTask() *Task { return &g.tasks.frame }

// SpawnTask returns the special item spawn task.
func (g *Game) SpawnTask() *Task { return &g.tasks.spawn }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Config returns the runner configuration.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

func (g *Game) setState(to State) {
	from := g.state
	if from == to {
		return
	}
	g.state = to
	g.log.Debug("state changed", "from", from, "to", to)
	g.emit(Event{Kind: EventStateChanged, From: from, To: to})
}

// Start requests a run from the menu. The help screen is shown first until
// it has been confirmed once in this session.
func (g *Game) Start() bool {
	if g.closed || g.state != StateMenu {
		return false
	}
	if !g.helpSeen {
		g.setState(StateHelp)
		return true
	}
	g.startRun()
	return true
}

// ConfirmHelp acknowledges the help screen and starts the run.
func (g *Game) ConfirmHelp() bool {
	if g.closed || g.state != StateHelp {
		return false
	}
	g.helpSeen = true
	g.startRun()
	return true
}

// Pause suspends a running game.
func (g *Game) Pause() bool {
	if g.state != StateRunning {
		return false
	}
	g.tasks.stop()
	g.setState(StatePaused)
	return true
}

// Resume continues a paused game under fresh task tokens.
func (g *Game) Resume() bool {
	if g.closed || g.state != StatePaused {
		return false
	}
	g.setState(StateRunning)
	g.tasks.start()
	return true
}

// Restart reinitializes the world and starts a new run from the menu,
// pause, or game-over screens.
func (g *Game) Restart() bool {
	if g.closed {
		return false
	}
	switch g.state {
	case StateMenu, StatePaused, StateGameOver:
		g.startRun()
		return true
	}
	return false
}

// BackToMenu leaves the current screen for the menu.
func (g *Game) BackToMenu() bool {
	switch g.state {
	case StateHelp, StatePaused, StateGameOver:
		g.tasks.stop()
		g.setState(StateMenu)
		return true
	}
	return false
}

// Close tears the game down. Both tasks stop and no run can start again.
func (g *Game) Close() {
	g.tasks.stop()
	g.closed = true
}

// HandleInput applies the state-machine actions of one input frame.
func (g *Game) HandleInput(in core.InputFrame) {
	switch g.state {
	case StateMenu:
		switch {
		case in.Has(core.ActionRestart) && g.helpSeen:
			g.Restart()
		case in.Has(core.ActionConfirm) || in.Has(core.ActionJump) || in.Has(core.ActionRestart):
			g.Start()
		}
	case StateHelp:
		switch {
		case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
			g.ConfirmHelp()
		case in.Has(core.ActionBack):
			g.BackToMenu()
		}
	case StateRunning:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			g.Pause()
		}
	case StatePaused:
		switch {
		case in.Has(core.ActionPause) || in.Has(core.ActionConfirm):
			g.Resume()
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionBack):
			g.BackToMenu()
		}
	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionBack):
			g.BackToMenu()
		}
	}
}

// startRun reinitializes the world and body, clears transient state, and
// starts both tasks.
func (g *Game) startRun() {
	g.tasks.stop()

	g.runs++
	g.level.Reset(g.rt.Seed+g.runs, g.rt.WorldW, g.rt.WorldH)
	g.body.Reset()
	g.specials = nil
	g.nextSpecialID = 0
	g.effects.Reset()
	g.clock.Reset()
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.worldScale = g.cfg.Effects.BaseWorldScale
	g.hitSound, g.itemSound = false, false
	g.submitted = false

	g.setState(StateRunning)
	g.tasks.start()
	g.log.Info("run started", "run", g.runs, "lives", g.lives)
}

// Tick runs one frame of the simulation. It is inert unless the game is
// running and tok is the frame task's current token.
func (g *Game) Tick(tok Token, in core.Intents) StepResult {
	if g.state != StateRunning || !g.tasks.frame.Valid(tok) {
		return StepResult{Events: g.DrainEvents()}
	}

	g.clock.Advance()
	now := g.clock.Now()

	// Timed effects, then the derived world scale.
	for _, k := range g.effects.Expire(now) {
		g.emit(Event{Kind: EventEffectExpired, Effect: k})
	}
	g.worldScale = WorldScale(g.effects, now, g.cfg.Effects)

	g.applyIntents(in)

	// Player time scale is always 1.
	g.body.SetPlatforms(g.level.PlatformBounds())
	g.body.Update(1)
	g.level.Update(g.rt.WorldW, g.rt.WorldH, g.worldScale)
	g.updateSpecials(g.worldScale)

	g.collideItems()
	g.collideSpecials()
	g.collideHazards()

	return StepResult{
		Ran:      true,
		Continue: g.tasks.frame.Valid(tok),
		Events:   g.DrainEvents(),
	}
}

// SpawnTick is the special item spawn timer callback.
func (g *Game) SpawnTick(tok Token) StepResult {
	if g.state != StateRunning || !g.tasks.spawn.Valid(tok) {
		return StepResult{Events: g.DrainEvents()}
	}
	g.spawnSpecial()
	return StepResult{
		Ran:      true,
		Continue: g.tasks.spawn.Valid(tok),
		Events:   g.DrainEvents(),
	}
}

func (g *Game) applyIntents(in core.Intents) {
	if in.Reset {
		g.body.Reset()
	}
	switch in.Horizontal() {
	case -1:
		g.body.MoveLeft()
	case 1:
		g.body.MoveRight()
	default:
		g.body.Stop()
	}
	if in.Jump {
		g.body.Jump()
	}
}

func (g *Game) startEffect(k EffectKind, now time.Duration) {
	g.effects.Start(k, now)
	if k != EffectHitFlash {
		g.log.Debug("effect started", "effect", k)
	}
	g.emit(Event{Kind: EventEffectStarted, Effect: k})
}

// addScore adds points, doubled while the multiplier window is open. The
// window is checked and expired here as well as in the timer pass.
func (g *Game) addScore(points int) int {
	now := g.clock.Now()
	awarded := points
	if _, started := g.effects.started[EffectMultiplier]; started {
		if g.effects.Active(EffectMultiplier, now) {
			awarded = points * g.cfg.Effects.MultiplierFactor
		} else {
			g.effects.Stop(EffectMultiplier)
			g.emit(Event{Kind: EventEffectExpired, Effect: EffectMultiplier})
		}
	}
	g.score += awarded
	g.emit(Event{Kind: EventScore, Points: points, Awarded: awarded, Total: g.score})
	return awarded
}

// sound emits a cue unless the previous one of the kind is too recent.
func (g *Game) sound(s Sound) {
	now := g.clock.Now()
	switch s {
	case SoundHit:
		if g.hitSound && now-g.hitSoundAt <= g.cfg.Effects.HitSoundCooldown {
			return
		}
		g.hitSound, g.hitSoundAt = true, now
	case SoundItem:
		if g.itemSound && now-g.itemSoundAt <= g.cfg.Effects.ItemSoundCooldown {
			return
		}
		g.itemSound, g.itemSoundAt = true, now
	}
	g.emit(Event{Kind: EventSound, Sound: s})
}

func (g *Game) gameOver() {
	g.tasks.stop()
	g.setState(StateGameOver)
	g.emit(Event{Kind: EventGameOver, Total: g.score})
	g.log.Info("game over", "score", g.score, "patterns", g.level.PatternsPlaced())
}

// Snapshot returns a copy of the state for rendering.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	return Snapshot{
		State:          g.state,
		Score:          g.score,
		Lives:          g.lives,
		MaxLives:       g.cfg.Gameplay.MaxLives,
		Player:         g.body.State(),
		Platforms:      append([]level.Platform(nil), g.level.Platforms()...),
		Hazards:        append([]level.Hazard(nil), g.level.Hazards()...),
		Items:          append([]level.Item(nil), g.level.Items()...),
		Specials:       append([]SpecialItem(nil), g.specials...),
		Effects:        g.effects.List(now),
		WorldScale:     g.worldScale,
		Elapsed:        now,
		Tier:           g.level.Tier(),
		PatternsPlaced: g.level.PatternsPlaced(),

		Shielded:     g.effects.Active(EffectShield, now),
		Invulnerable: g.effects.Active(EffectInvulnerable, now),
		HitFlash:     g.effects.Active(EffectHitFlash, now),
		Multiplier:   g.effects.Active(EffectMultiplier, now),

		HelpSeen:          g.helpSeen,
		Submitted:         g.submitted,
		PersistenceFailed: g.persistenceFailed,
		Leaderboard:       append([]storage.HighScore(nil), g.leaderboard...),
	}
}
