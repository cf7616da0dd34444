package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/autoscroller/internal/core"
	"github.com/vovakirdan/autoscroller/internal/game"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	source   ScoreSource
	keys     *KeyMapper
	held     heldKeys
	theme    Theme
	help     help.Model
	gameKeys GameKeyMap
	name     textinput.Model
	board    *ScoreboardModel
	player   string // prefill for name entry
	naming   bool
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the game. store may be nil, which hides the
// scoreboard; the game itself receives its store through game.WithStore.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Prompt = "name: "
	ti.Placeholder = "AAA"
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 1

	m := Model{
		game:     g,
		screen:   core.NewScreen(80, 23),
		config:   cfg,
		keys:     NewKeyMapper(),
		theme:    DefaultTheme(),
		help:     help.New(),
		gameKeys: DefaultGameKeyMap(),
		name:     ti,
		width:    80,
		height:   24,
	}
	if store != nil {
		m.source = store
	}
	return m
}

// WithPlayer pre-fills the name entry, e.g. from the SSH user.
func (m Model) WithPlayer(name string) Model {
	m.player = storage.SanitizeName(name)
	return m
}

// Init loads the leaderboard for the menu.
func (m Model) Init() tea.Cmd {
	m.game.RefreshLeaderboard(context.Background())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	if m.naming {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Close()
	m.quitting = true
	return m, tea.Quit
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}
	if m.naming {
		return m.handleNameKey(msg)
	}

	if msg.String() == "tab" && m.game.State() == game.StateMenu && m.source != nil {
		board := NewScoreboardModel(m.source, m.width, m.height)
		m.board = &board
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}
	if action == core.ActionNone {
		return m, nil
	}
	if m.game.State() == game.StateRunning && m.held.press(action) {
		return m, nil
	}

	prev := m.game.State()
	frame := core.NewInputFrame()
	frame.Set(action)
	m.game.HandleInput(frame)
	return m.afterTransition(prev)
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case board.IsQuitting():
		return m.quit()
	case board.IsGoingBack():
		m.board = nil
		m.game.RefreshLeaderboard(context.Background())
		return m, nil
	}
	m.board = &board
	return m, cmd
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitName()
	case tea.KeyEsc:
		m.naming = false
		m.name.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) submitName() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		name = m.name.Placeholder
	}
	err := m.game.SubmitScore(context.Background(), name)
	switch {
	case err == nil:
		saved, _ := storage.NormalizeName(name)
		m.status = "saved as " + saved
	case errors.Is(err, storage.ErrInvalidName):
		m.status = "!use 1-3 letters or digits"
		return m, nil
	default:
		m.status = "!could not save score"
	}
	m.naming = false
	m.name.Blur()
	return m, nil
}

// afterTransition schedules or tears down work for the state the game
// just entered.
func (m Model) afterTransition(prev game.State) (tea.Model, tea.Cmd) {
	cur := m.game.State()
	if cur == prev {
		return m, nil
	}
	switch cur {
	case game.StateRunning:
		m.held.clear()
		m.status = ""
		m.naming = false
		return m, m.startTasks()
	case game.StateMenu:
		m.naming = false
		m.status = ""
		m.game.RefreshLeaderboard(context.Background())
	case game.StateGameOver:
		return m.enterGameOver()
	}
	return m, nil
}

// startTasks schedules the frame driver and the spawn timer under the
// tokens the game just issued.
func (m Model) startTasks() tea.Cmd {
	frame, spawn := m.game.FrameTask(), m.game.SpawnTask()
	if !frame.Active() {
		return nil
	}
	interval := m.game.Config().Specials.Interval
	return tea.Batch(
		frameCmd(m.config.TickRate, frame.Token()),
		spawnCmd(interval, spawn.Token()),
	)
}

func (m Model) enterGameOver() (tea.Model, tea.Cmd) {
	m.held.clear()
	m.status = ""
	if !m.game.HasStore() || m.game.Score() == 0 {
		return m, nil
	}
	m.naming = true
	m.name.Reset()
	m.name.SetValue(m.player)
	return m, m.name.Focus()
}

// handleFrame runs one simulation tick and schedules the next one.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	res := m.game.Tick(msg.Token, m.held.intents())
	if !res.Ran {
		return m, nil
	}
	m.held.advance()

	for _, e := range res.Events {
		if e.Kind == game.EventGameOver {
			return m.enterGameOver()
		}
	}
	if !res.Continue {
		return m, nil
	}
	return m, frameCmd(m.config.TickRate, msg.Token)
}

// handleSpawn runs one special item spawn attempt.
func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	res := m.game.SpawnTick(msg.Token)
	if !res.Continue {
		return m, nil
	}
	return m, spawnCmd(m.game.Config().Specials.Interval, msg.Token)
}

// handleResize processes window resize events. The world keeps its fixed
// size; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// saveScreenshot saves the current world view to a text file.
func (m *Model) saveScreenshot() {
	DrawWorld(m.screen, m.game.Snapshot(), m.config.WorldW, m.config.WorldH)

	dir := filepath.Join(os.Getenv("HOME"), ".autoscroller", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("autoscroller_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	snap := m.game.Snapshot()
	switch snap.State {
	case game.StateMenu:
		return menuView(snap, m.theme, m.width, m.height)
	case game.StateHelp:
		return helpView(m.theme, m.width, m.height)
	case game.StateGameOver:
		input := ""
		if m.naming {
			input = m.name.View()
		}
		return gameOverView(snap, m.theme, input, m.status, m.width, m.height)
	}

	DrawWorld(m.screen, snap, m.config.WorldW, m.config.WorldH)
	if snap.State == game.StatePaused {
		drawPause(m.screen)
	}
	footer := m.help.View(m.gameKeys)
	if snap.PersistenceFailed {
		footer += "  " + m.theme.Warning.Render("scores offline")
	}
	return RenderScreen(m.screen) + "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(footer)
}

// Run starts the Bubble Tea program for the game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	defer g.Close()

	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
