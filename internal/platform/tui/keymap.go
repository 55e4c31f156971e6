package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keepups/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Start      key.Binding
	Kick       key.Binding
	Submit     key.Binding
	Skip       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default bindings. Kick is only shown when
// keyboard kicks are enabled.
func DefaultKeyMap(keyboardKick bool) KeyMap {
	km := KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("enter/click", "start game"),
		),
		Kick: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "kick"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
	km.Kick.SetEnabled(keyboardKick)
	return km
}

// MapKey translates a key press to a game action for the given phase.
// Keys typed into the name prompt are not actions; the prompt owns them.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase core.Phase) core.Action {
	if key.Matches(msg, k.ForceQuit) {
		return core.ActionQuit
	}

	switch phase {
	case core.PhaseMenu:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Start):
			return core.ActionStart
		}

	case core.PhasePlaying:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Kick):
			return core.ActionKick
		}

	case core.PhaseAwaitingName:
		switch {
		case key.Matches(msg, k.Submit):
			return core.ActionConfirm
		case key.Matches(msg, k.Skip):
			return core.ActionBack
		}
	}

	return core.ActionNone
}

// HelpKeys is the help.KeyMap shown in the footer for one phase.
type HelpKeys []key.Binding

func (p HelpKeys) ShortHelp() []key.Binding {
	return p
}

func (p HelpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p}
}

// HelpFor returns the bindings worth showing in the given phase.
func (k KeyMap) HelpFor(phase core.Phase) HelpKeys {
	switch phase {
	case core.PhasePlaying:
		return HelpKeys{
			key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "kick the ball")),
			k.Kick, k.Screenshot, k.Quit,
		}
	case core.PhaseAwaitingName:
		return HelpKeys{k.Submit, k.Skip}
	default:
		return HelpKeys{k.Start, k.Screenshot, k.Quit}
	}
}
