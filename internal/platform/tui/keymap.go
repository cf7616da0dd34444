package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/autoscroller/internal/core"
)

// holdFrames is how long a horizontal key press keeps the runner moving.
// Terminals report presses and auto-repeat but never releases.
const holdFrames = 12

// KeyMapper translates Bubble Tea key messages to actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "r":
		return core.ActionReset, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "n":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// heldKeys accumulates movement input between frames.
type heldKeys struct {
	left  int
	right int
	jump  bool
	reset bool
}

// press records a movement action. It reports false for actions that are
// not movement.
func (h *heldKeys) press(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		h.left, h.right = holdFrames, 0
	case core.ActionRight:
		h.right, h.left = holdFrames, 0
	case core.ActionJump:
		h.jump = true
	case core.ActionReset:
		h.reset = true
	default:
		return false
	}
	return true
}

func (h *heldKeys) intents() core.Intents {
	return core.Intents{
		Left:  h.left > 0,
		Right: h.right > 0,
		Jump:  h.jump,
		Reset: h.reset,
	}
}

// advance ages held directions by one frame and drops one-shot presses.
func (h *heldKeys) advance() {
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	h.jump = false
	h.reset = false
}

func (h *heldKeys) clear() {
	*h = heldKeys{}
}

// GameKeyMap describes the in-game bindings for the help footer.
type GameKeyMap struct {
	Move    key.Binding
	Jump    key.Binding
	Reset   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Jump, k.Reset},
		{k.Pause, k.Restart, k.Back},
		{k.Scores, k.Quit},
	}
}

// DefaultGameKeyMap returns the bindings MapKey implements.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("left", "right", "a", "d"),
			key.WithHelp("←/→", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new run"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
