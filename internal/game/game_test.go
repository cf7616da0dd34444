package game

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/autoscroller/internal/config"
	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/pattern"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

// scriptRand replays fixed values; when a script runs out Float64 returns
// 0.99 and Intn returns 0.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

type fakeStore struct {
	scores  []storage.HighScore
	err     error
	submits []storage.HighScore
}

func (s *fakeStore) Top(ctx context.Context, limit int) ([]storage.HighScore, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func (s *fakeStore) Submit(ctx context.Context, name string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	hs := storage.HighScore{ID: int64(len(s.submits) + 1), Name: name, Score: score}
	s.submits = append(s.submits, hs)
	s.scores = append(s.scores, hs)
	return hs.ID, nil
}

func emptyLibrary(t *testing.T) *pattern.Library {
	t.Helper()
	lib, err := pattern.NewLibrary(nil)
	if err != nil {
		t.Fatalf("NewLibrary() error = %v", err)
	}
	return lib
}

func newGame(t *testing.T, lib *pattern.Library, opts ...Option) *Game {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 7
	return New(config.DefaultRunnerConfig(), lib, rt, opts...)
}

// startRunning walks the game through the help gate into a run.
func startRunning(t *testing.T, g *Game) {
	t.Helper()
	g.Start()
	if g.State() == StateHelp {
		g.ConfirmHelp()
	}
	if g.State() != StateRunning {
		t.Fatalf("State() = %v, expected running", g.State())
	}
}

func tick(g *Game) StepResult {
	return g.Tick(g.FrameTask().Token(), core.Intents{})
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestHelpGate(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	if g.State() != StateMenu {
		t.Fatalf("initial State() = %v, expected menu", g.State())
	}

	g.Start()
	if g.State() != StateHelp {
		t.Fatalf("first Start() -> %v, expected help", g.State())
	}
	if g.FrameTask().Active() {
		t.Error("frame task running on help screen")
	}
	g.ConfirmHelp()
	if g.State() != StateRunning {
		t.Fatalf("ConfirmHelp() -> %v, expected running", g.State())
	}

	g.Pause()
	g.BackToMenu()
	g.Start()
	if g.State() != StateRunning {
		t.Errorf("Start() after help seen -> %v, expected running", g.State())
	}
	if !g.Snapshot().HelpSeen {
		t.Error("HelpSeen should stay set for the session")
	}
}

func TestTransitionsRejected(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	if g.Pause() || g.Resume() || g.ConfirmHelp() || g.BackToMenu() {
		t.Error("menu should reject pause, resume, confirm, and back")
	}
	startRunning(t, g)
	if g.Start() || g.Restart() || g.Resume() || g.BackToMenu() {
		t.Error("running should reject start, restart, resume, and back")
	}
}

func TestTickInertWhenNotRunning(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	before := g.Snapshot()
	res := g.Tick(g.FrameTask().Token(), core.Intents{Right: true, Jump: true})
	if res.Ran || res.Continue {
		t.Errorf("Tick() in menu = %+v, expected inert", res)
	}
	if res := g.SpawnTick(g.SpawnTask().Token()); res.Ran {
		t.Error("SpawnTick() ran in menu")
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Tick() in menu mutated state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	g.startEffect(EffectShield, g.clock.Now())
	for i := 0; i < 30; i++ {
		tick(g)
	}
	stale := g.FrameTask().Token()
	g.Pause()
	before := g.Snapshot()

	for i := 0; i < 100; i++ {
		if res := g.Tick(stale, core.Intents{Right: true}); res.Ran {
			t.Fatal("Tick() ran while paused")
		}
	}
	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("paused ticks mutated state:\nbefore %+v\nafter  %+v", before, after)
	}

	g.Resume()
	if g.Snapshot().Elapsed != before.Elapsed {
		t.Errorf("Resume() reset the clock: %v -> %v", before.Elapsed, g.Snapshot().Elapsed)
	}
	if got, want := g.effects.Remaining(EffectShield, g.clock.Now()), before.Effects[0].Remaining; got != want {
		t.Errorf("shield remaining after resume = %v, expected %v", got, want)
	}
}

func TestStaleTokenIgnored(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	oldFrame := g.FrameTask().Token()
	oldSpawn := g.SpawnTask().Token()

	g.Pause()
	g.Resume()

	if res := g.Tick(oldFrame, core.Intents{}); res.Ran {
		t.Error("Tick() accepted a token from before the pause")
	}
	if res := g.SpawnTick(oldSpawn); res.Ran {
		t.Error("SpawnTick() accepted a token from before the pause")
	}
	res := tick(g)
	if !res.Ran || !res.Continue {
		t.Errorf("Tick() with current token = %+v, expected ran and continue", res)
	}
}

func TestShieldBlocksDamage(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	now := g.clock.Now()
	g.startEffect(EffectShield, now)
	g.DrainEvents()

	g.hit()

	if g.Lives() != g.cfg.Gameplay.Lives {
		t.Errorf("Lives() = %d, expected %d", g.Lives(), g.cfg.Gameplay.Lives)
	}
	if g.effects.Active(EffectInvulnerable, now) {
		t.Error("shielded hit should not start invulnerability")
	}
	if !g.effects.Active(EffectHitFlash, now) {
		t.Error("shielded hit should still flash")
	}
	events := g.DrainEvents()
	if countEvents(events, EventDamage) != 0 {
		t.Error("shielded hit emitted damage")
	}
	if countEvents(events, EventHitFlash) != 1 {
		t.Error("shielded hit should emit a hit flash")
	}
}

func TestInvulnerabilityLimitsDamage(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)

	for i := 0; i < 3; i++ {
		g.hit()
		tick(g)
	}
	if g.Lives() != 2 {
		t.Fatalf("three consecutive hits: Lives() = %d, expected 2", g.Lives())
	}

	// 1.5s at 60 fps: still protected after 90 frames, exposed after 91.
	for g.effects.Active(EffectInvulnerable, g.clock.Now()) {
		tick(g)
	}
	g.hit()
	if g.Lives() != 1 {
		t.Errorf("hit after invulnerability: Lives() = %d, expected 1", g.Lives())
	}
}

func TestHitSoundRateLimited(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	g.DrainEvents()

	g.sound(SoundHit)
	g.sound(SoundHit)
	if n := countEvents(tick(g).Events, EventSound); n != 1 {
		t.Errorf("sounds within cooldown = %d, expected 1", n)
	}
	g.sound(SoundHit)
	if n := countEvents(tick(g).Events, EventSound); n != 0 {
		t.Errorf("sound one frame later = %d, expected 0", n)
	}

	for i := 0; i < 30; i++ {
		tick(g)
	}
	g.sound(SoundHit)
	if n := countEvents(g.DrainEvents(), EventSound); n != 1 {
		t.Errorf("sound after cooldown = %d, expected 1", n)
	}
}

func TestDamageAppliesWhileAlertCoolsDown(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Effects.Invulnerability = 0
	rt := core.DefaultConfig()
	rt.Seed = 7
	g := New(cfg, emptyLibrary(t), rt)
	startRunning(t, g)
	g.DrainEvents()

	g.hit()
	events := tick(g).Events
	g.hit()
	events = append(events, g.DrainEvents()...)

	if n := countEvents(events, EventDamage); n != 2 {
		t.Errorf("damage events = %d, expected 2", n)
	}
	if n := countEvents(events, EventSound); n != 1 {
		t.Errorf("hit sounds within cooldown = %d, expected 1", n)
	}
	if g.Lives() != cfg.Gameplay.Lives-2 {
		t.Errorf("Lives() = %d, expected %d", g.Lives(), cfg.Gameplay.Lives-2)
	}
}

func TestGameOverHaltsTasks(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	frame := g.FrameTask().Token()
	spawn := g.SpawnTask().Token()

	g.lives = 1
	g.hit()

	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, expected gameover", g.State())
	}
	if g.FrameTask().Active() || g.SpawnTask().Active() {
		t.Error("tasks still active after game over")
	}
	events := g.DrainEvents()
	if countEvents(events, EventGameOver) != 1 {
		t.Errorf("events = %v, expected one game over", events)
	}

	before := g.Snapshot()
	if res := g.Tick(frame, core.Intents{Right: true}); res.Ran || res.Continue {
		t.Errorf("forced Tick() after game over = %+v", res)
	}
	if res := g.SpawnTick(spawn); res.Ran || res.Continue {
		t.Errorf("forced SpawnTick() after game over = %+v", res)
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("forced ticks after game over mutated state")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newGame(t, pattern.Builtin())
	startRunning(t, g)
	for i := 0; i < 120; i++ {
		tick(g)
	}
	g.addScore(40)
	g.lives = 1
	g.hit()
	oldFrame := g.FrameTask().Token()

	if !g.Restart() {
		t.Fatal("Restart() from game over rejected")
	}
	snap := g.Snapshot()
	if snap.State != StateRunning || snap.Score != 0 || snap.Lives != g.cfg.Gameplay.Lives {
		t.Errorf("after Restart(): state %v score %d lives %d", snap.State, snap.Score, snap.Lives)
	}
	if snap.Elapsed != 0 || len(snap.Effects) != 0 || len(snap.Specials) != 0 {
		t.Errorf("after Restart(): elapsed %v effects %v specials %v", snap.Elapsed, snap.Effects, snap.Specials)
	}
	if snap.PatternsPlaced != 0 {
		t.Errorf("PatternsPlaced = %d, expected 0", snap.PatternsPlaced)
	}
	if g.FrameTask().Valid(oldFrame) {
		t.Error("token from the previous run still valid")
	}
	if !tick(g).Ran {
		t.Error("Tick() with fresh token did not run")
	}
}

func TestMultiplierDoublesScore(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	g.startEffect(EffectMultiplier, g.clock.Now())
	g.DrainEvents()

	if got := g.addScore(50); got != 100 {
		t.Errorf("addScore(50) with multiplier = %d, expected 100", got)
	}
	events := g.DrainEvents()
	if len(events) != 1 || events[0].Points != 50 || events[0].Awarded != 100 || events[0].Total != 100 {
		t.Errorf("score event = %+v", events)
	}

	// Let the window lapse without the timer pass running.
	for g.effects.Active(EffectMultiplier, g.clock.Now()) {
		g.clock.Advance()
	}
	if got := g.addScore(50); got != 50 {
		t.Errorf("addScore(50) after expiry = %d, expected 50", got)
	}
	if n := countEvents(g.DrainEvents(), EventEffectExpired); n != 1 {
		t.Errorf("expired events = %d, expected 1", n)
	}
	if g.Score() != 150 {
		t.Errorf("Score() = %d, expected 150", g.Score())
	}
}

func TestApplySpecial(t *testing.T) {
	scoring := config.DefaultRunnerConfig().Scoring
	tests := []struct {
		kind    SpecialKind
		lives   int
		score   int
		effects []EffectKind
	}{
		{SpecialHeart, 3, 0, nil},
		{SpecialScrew, 2, scoring.Screw, nil},
		{SpecialChip, 2, scoring.Chip, nil},
		{SpecialBattery, 2, scoring.Battery, nil},
		{SpecialAntenna, 2, 0, []EffectKind{EffectMultiplier}},
		{SpecialToolbox, 3, 0, []EffectKind{EffectMultiplier}},
		{SpecialScanner, 2, 0, []EffectKind{EffectShield}},
		{SpecialTimer, 2, 0, []EffectKind{EffectSlowMotion}},
		{SpecialTurbo, 2, 0, []EffectKind{EffectSpeedUp}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := newGame(t, emptyLibrary(t))
			startRunning(t, g)
			g.lives = 2

			g.applySpecial(tt.kind)

			if g.Lives() != tt.lives {
				t.Errorf("Lives() = %d, expected %d", g.Lives(), tt.lives)
			}
			if g.Score() != tt.score {
				t.Errorf("Score() = %d, expected %d", g.Score(), tt.score)
			}
			var got []EffectKind
			for _, e := range g.effects.List(g.clock.Now()) {
				got = append(got, e.Kind)
			}
			if !reflect.DeepEqual(got, tt.effects) {
				t.Errorf("effects = %v, expected %v", got, tt.effects)
			}
		})
	}
}

func TestHeartCappedAtMaxLives(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	g.DrainEvents()
	g.applySpecial(SpecialHeart)
	if g.Lives() != g.cfg.Gameplay.MaxLives {
		t.Errorf("Lives() = %d, expected cap %d", g.Lives(), g.cfg.Gameplay.MaxLives)
	}
	if n := countEvents(g.DrainEvents(), EventLifeRestored); n != 0 {
		t.Errorf("life restored at cap emitted %d events", n)
	}
}

func TestTurboChangesWorldScale(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	tick(g)
	if got := g.Snapshot().WorldScale; got != g.cfg.Effects.BaseWorldScale {
		t.Fatalf("WorldScale = %v, expected base", got)
	}
	g.applySpecial(SpecialTimer)
	g.applySpecial(SpecialTurbo)
	tick(g)
	snap := g.Snapshot()
	if snap.WorldScale != g.cfg.Effects.SpeedUpFactor {
		t.Errorf("WorldScale = %v, expected %v", snap.WorldScale, g.cfg.Effects.SpeedUpFactor)
	}
	for _, e := range snap.Effects {
		if e.Kind == EffectSlowMotion {
			t.Error("slow-motion survived a speed-up pickup")
		}
	}
}

func TestSpawnSpecial(t *testing.T) {
	rng := &scriptRand{
		floats: []float64{0.5, 0.7},
		ints:   []int{1, 0},
	}
	g := newGame(t, emptyLibrary(t), WithRand(rng))
	startRunning(t, g)
	g.DrainEvents()

	res := g.SpawnTick(g.SpawnTask().Token())
	if !res.Ran || !res.Continue {
		t.Fatalf("SpawnTick() = %+v", res)
	}
	if len(g.specials) != 1 {
		t.Fatalf("specials = %d, expected 1", len(g.specials))
	}
	s := g.specials[0]
	sc := g.cfg.Specials
	if s.X != g.rt.WorldW+sc.SpawnOffset || s.Y != sc.Lanes[1] || s.Kind != SpecialBattery {
		t.Errorf("special = %+v", s)
	}
	if countEvents(res.Events, EventSpecialSpawned) != 1 {
		t.Errorf("events = %v", res.Events)
	}

	g.SpawnTick(g.SpawnTask().Token())
	if len(g.specials) != 1 {
		t.Errorf("roll above spawn chance added a special")
	}
}

func TestSpecialsScrollAndCull(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	g.specials = []SpecialItem{
		{ID: 1, X: 500, Y: 50, Width: 30, Height: 30, Kind: SpecialChip},
		{ID: 2, X: -49, Y: 50, Width: 30, Height: 30, Kind: SpecialChip},
	}
	g.updateSpecials(1.3)
	if len(g.specials) != 1 || g.specials[0].ID != 1 {
		t.Fatalf("specials after update = %+v", g.specials)
	}
	if want := 500 - g.cfg.Specials.SpeedFactor*1.3; g.specials[0].X != want {
		t.Errorf("X = %v, expected %v", g.specials[0].X, want)
	}
}

func TestSpecialPickupOnTick(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	p := g.body.State()
	g.specials = []SpecialItem{{ID: 9, X: p.X + 10, Y: p.Y + 20, Width: 30, Height: 30, Kind: SpecialChip}}

	res := tick(g)
	if len(g.specials) != 0 {
		t.Errorf("collected special not removed: %+v", g.specials)
	}
	if g.Score() != g.cfg.Scoring.Chip {
		t.Errorf("Score() = %d, expected %d", g.Score(), g.cfg.Scoring.Chip)
	}
	if countEvents(res.Events, EventSpecialPickup) != 1 {
		t.Errorf("events = %v", res.Events)
	}
}

// itemLibrary has three floor-level items and nothing else.
func itemLibrary(t *testing.T) *pattern.Library {
	t.Helper()
	lib, err := pattern.NewLibrary([]pattern.Pattern{{
		ID: "p0", Difficulty: pattern.Easy, Width: 300,
		Sockets: []pattern.SocketDef{
			{XOffset: 100, YOffset: 350, Kind: pattern.KindItem, Subtype: pattern.SubtypeItemA, Probability: 1},
			{XOffset: 140, YOffset: 350, Kind: pattern.KindItem, Subtype: pattern.SubtypeItemA, Probability: 1},
			{XOffset: 180, YOffset: 350, Kind: pattern.KindItem, Subtype: pattern.SubtypeItemA, Probability: 1},
		},
	}})
	if err != nil {
		t.Fatalf("NewLibrary() error = %v", err)
	}
	return lib
}

func TestItemPickupAwardedOnce(t *testing.T) {
	g := newGame(t, itemLibrary(t))
	startRunning(t, g)

	picked := make(map[int]int)
	sounds := 0
	for i := 0; i < 450 && g.State() == StateRunning; i++ {
		for _, e := range tick(g).Events {
			switch {
			case e.Kind == EventItemPickup:
				picked[e.ItemID]++
			case e.Kind == EventSound && e.Sound == SoundItem:
				sounds++
			}
		}
	}

	if len(picked) != 3 {
		t.Fatalf("picked %d distinct items, expected 3", len(picked))
	}
	for id, n := range picked {
		if n != 1 {
			t.Errorf("item %d awarded %d times", id, n)
		}
	}
	if want := 3 * g.cfg.Scoring.ItemA; g.Score() != want {
		t.Errorf("Score() = %d, expected %d", g.Score(), want)
	}
	if sounds == 0 || sounds > 3 {
		t.Errorf("item sounds = %d, expected 1..3", sounds)
	}
}

// hazardLibrary has one ground hazard the player cannot avoid without input.
func hazardLibrary(t *testing.T) *pattern.Library {
	t.Helper()
	lib, err := pattern.NewLibrary([]pattern.Pattern{{
		ID: "p0", Difficulty: pattern.Easy, Width: 300,
		Sockets: []pattern.SocketDef{
			{XOffset: 100, YOffset: 350, Kind: pattern.KindHazard, Subtype: pattern.SubtypeGround, Probability: 1},
		},
	}})
	if err != nil {
		t.Fatalf("NewLibrary() error = %v", err)
	}
	return lib
}

func TestHazardsEndTheRun(t *testing.T) {
	g := newGame(t, hazardLibrary(t))
	startRunning(t, g)

	var damageTicks []int
	last := g.FrameTask().Token()
	for i := 0; i < 3000 && g.State() == StateRunning; i++ {
		last = g.FrameTask().Token()
		for _, e := range tick(g).Events {
			if e.Kind == EventDamage {
				damageTicks = append(damageTicks, i)
			}
		}
	}

	if g.State() != StateGameOver {
		t.Fatalf("State() = %v after 3000 ticks, expected gameover", g.State())
	}
	if len(damageTicks) != g.cfg.Gameplay.Lives {
		t.Fatalf("damage events = %d, expected %d", len(damageTicks), g.cfg.Gameplay.Lives)
	}
	for i := 1; i < len(damageTicks); i++ {
		if d := damageTicks[i] - damageTicks[i-1]; d <= 90 {
			t.Errorf("damage %d landed %d ticks after the previous one, inside invulnerability", i, d)
		}
	}
	if res := g.Tick(last, core.Intents{}); res.Ran {
		t.Error("Tick() with last token ran after game over")
	}
}

func TestHandleInput(t *testing.T) {
	frame := func(actions ...core.Action) core.InputFrame {
		f := core.NewInputFrame()
		for _, a := range actions {
			f.Set(a)
		}
		return f
	}

	g := newGame(t, emptyLibrary(t))
	steps := []struct {
		action core.Action
		expect State
	}{
		{core.ActionRestart, StateHelp},
		{core.ActionBack, StateMenu},
		{core.ActionConfirm, StateHelp},
		{core.ActionBack, StateMenu},
		{core.ActionJump, StateHelp},
		{core.ActionConfirm, StateRunning},
		{core.ActionPause, StatePaused},
		{core.ActionPause, StateRunning},
		{core.ActionBack, StatePaused},
		{core.ActionRestart, StateRunning},
		{core.ActionPause, StatePaused},
		{core.ActionBack, StateMenu},
		{core.ActionConfirm, StateRunning},
		{core.ActionPause, StatePaused},
		{core.ActionBack, StateMenu},
		{core.ActionRestart, StateRunning},
	}
	for i, s := range steps {
		g.HandleInput(frame(s.action))
		if g.State() != s.expect {
			t.Fatalf("step %d (%v): State() = %v, expected %v", i, s.action, g.State(), s.expect)
		}
	}
}

func TestCloseRefusesStart(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	startRunning(t, g)
	tok := g.FrameTask().Token()
	g.Close()
	if g.FrameTask().Active() || g.SpawnTask().Active() {
		t.Error("Close() left tasks running")
	}
	if g.Tick(tok, core.Intents{}).Ran {
		t.Error("Tick() ran after Close()")
	}
	g.Pause()
	if g.Resume() || g.Restart() {
		t.Error("closed game restarted")
	}
}

func TestStateChangeEvents(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	g.Start()
	g.ConfirmHelp()
	var got []State
	for _, e := range g.DrainEvents() {
		if e.Kind == EventStateChanged {
			got = append(got, e.To)
		}
	}
	want := []State{StateHelp, StateRunning}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transitions = %v, expected %v", got, want)
	}
}

func gameOver(t *testing.T, g *Game) {
	t.Helper()
	startRunning(t, g)
	g.addScore(120)
	g.lives = 1
	g.hit()
	if g.State() != StateGameOver {
		t.Fatalf("State() = %v, expected gameover", g.State())
	}
}

func TestSubmitScore(t *testing.T) {
	store := &fakeStore{}
	g := newGame(t, emptyLibrary(t), WithStore(store))
	ctx := context.Background()

	if err := g.SubmitScore(ctx, "AAA"); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("SubmitScore() in menu error = %v, expected ErrNotGameOver", err)
	}

	gameOver(t, g)
	if err := g.SubmitScore(ctx, "ABC"); err != nil {
		t.Fatalf("SubmitScore() error = %v", err)
	}
	if len(store.submits) != 1 || store.submits[0].Score != 120 {
		t.Errorf("submits = %+v", store.submits)
	}
	snap := g.Snapshot()
	if !snap.Submitted || snap.PersistenceFailed {
		t.Errorf("Submitted = %v, PersistenceFailed = %v", snap.Submitted, snap.PersistenceFailed)
	}
	if len(snap.Leaderboard) != 1 {
		t.Errorf("Leaderboard = %+v, expected refreshed board", snap.Leaderboard)
	}
	if err := g.SubmitScore(ctx, "ABC"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("second SubmitScore() error = %v, expected ErrAlreadySubmitted", err)
	}
}

func TestPersistenceFailureFlag(t *testing.T) {
	store := &fakeStore{err: errors.New("disk on fire")}
	g := newGame(t, emptyLibrary(t), WithStore(store))
	ctx := context.Background()

	g.RefreshLeaderboard(ctx)
	if !g.Snapshot().PersistenceFailed {
		t.Error("failed Top() should set PersistenceFailed")
	}

	gameOver(t, g)
	if err := g.SubmitScore(ctx, "ABC"); err == nil {
		t.Fatal("SubmitScore() should surface the store error")
	}
	snap := g.Snapshot()
	if !snap.PersistenceFailed || snap.Submitted {
		t.Errorf("PersistenceFailed = %v, Submitted = %v", snap.PersistenceFailed, snap.Submitted)
	}

	store.err = nil
	g.RefreshLeaderboard(ctx)
	if g.Snapshot().PersistenceFailed {
		t.Error("successful refresh should clear PersistenceFailed")
	}
}

func TestSubmitWithoutStore(t *testing.T) {
	g := newGame(t, emptyLibrary(t))
	gameOver(t, g)
	if err := g.SubmitScore(context.Background(), "ABC"); !errors.Is(err, ErrNoStore) {
		t.Errorf("SubmitScore() error = %v, expected ErrNoStore", err)
	}
	g.RefreshLeaderboard(context.Background())
	if g.Snapshot().PersistenceFailed {
		t.Error("missing store is not a persistence failure")
	}
}
