package arcade

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/batball/internal/game"
)

type keyMap struct {
	Bat     key.Binding
	Ball    key.Binding
	Stump   key.Binding
	Reset   key.Binding
	History key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Bat: key.NewBinding(
			key.WithKeys("b", "1"),
			key.WithHelp("b", "Bat"),
		),
		Ball: key.NewBinding(
			key.WithKeys("a", "2"),
			key.WithHelp("a", "Ball"),
		),
		Stump: key.NewBinding(
			key.WithKeys("s", "3"),
			key.WithHelp("s", "Stump"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Reset everything"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "Keep playing"),
		),
	}
}

// moveFor maps a key press onto a move, if it names one.
func (k keyMap) moveFor(msg tea.KeyPressMsg) (game.Move, bool) {
	switch {
	case key.Matches(msg, k.Bat):
		return game.MoveBat, true
	case key.Matches(msg, k.Ball):
		return game.MoveBall, true
	case key.Matches(msg, k.Stump):
		return game.MoveStump, true
	}
	return game.MoveUnspecified, false
}
