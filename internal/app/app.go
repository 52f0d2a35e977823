// Package app hosts the root Bubble Tea model for the terminal front-end.
package app

import (
	"context"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/batball/internal/router"
	"github.com/abhisek/batball/internal/screens/arcade"
	"github.com/abhisek/batball/internal/store"
	"github.com/abhisek/batball/internal/ui/layout"
)

// Options configures the terminal front-end.
type Options struct {
	Game        arcade.Game
	Rounds      store.RoundRepo
	RevealDelay time.Duration

	// Input and Output override the terminal; nil keeps the defaults.
	Input  io.Reader
	Output io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	game   arcade.Game
	width  int
	height int
}

// NewAppModel creates an AppModel with the arcade screen at the bottom of
// the stack.
func NewAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(arcade.New(opts.Game, opts.Rounds, opts.RevealDelay)),
		game:   opts.Game,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := m.router.Hints()
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) headerStatus() layout.HeaderStatus {
	if m.game == nil {
		return layout.HeaderStatus{}
	}
	p := m.game.PowerLevel()
	return layout.HeaderStatus{
		Level:     m.game.CurrentScore().Level,
		PowerName: p.DisplayName(),
		PowerIcon: p.Icon(),
		PowerKey:  string(p),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(NewAppModel(opts), progOpts...)
	_, err := p.Run()
	return err
}
