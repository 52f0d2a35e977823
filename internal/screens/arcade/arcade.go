// Package arcade is the main play screen: pick a move, watch the reveal and
// follow score, level, streak, combo and power as they change.
package arcade

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/round"
	"github.com/abhisek/batball/internal/router"
	"github.com/abhisek/batball/internal/screens/history"
	"github.com/abhisek/batball/internal/store"
	"github.com/abhisek/batball/internal/ui/layout"
)

// Game is the part of the round controller the screen drives.
type Game interface {
	BeginRound(move game.Move) error
	CompleteRound(ctx context.Context) (*round.Result, error)
	ResetGame(ctx context.Context)
	CurrentScore() progression.ScoreRecord
	PowerLevel() progression.PowerLevel
	ComboMultiplier() int
	LastMove() (game.Move, bool)
}

var _ Game = (*round.Controller)(nil)

// ArcadeScreen implements router.Screen for live play.
type ArcadeScreen struct {
	game        Game
	rounds      store.RoundRepo
	revealDelay time.Duration
	keys        keyMap

	pending      game.Move
	last         *round.Result
	confirmReset bool
	errMsg       string
}

var _ router.Screen = (*ArcadeScreen)(nil)
var _ router.KeyHintProvider = (*ArcadeScreen)(nil)

// New creates an ArcadeScreen. rounds may be nil, in which case the
// history screen is unavailable.
func New(g Game, rounds store.RoundRepo, revealDelay time.Duration) *ArcadeScreen {
	return &ArcadeScreen{
		game:        g,
		rounds:      rounds,
		revealDelay: revealDelay,
		keys:        defaultKeyMap(),
	}
}

func (s *ArcadeScreen) Init() tea.Cmd {
	return nil
}

func (s *ArcadeScreen) Title() string {
	return "Arcade"
}

// Revealing reports whether a submitted move is waiting to be resolved.
func (s *ArcadeScreen) Revealing() bool {
	return s.pending != game.MoveUnspecified
}

func (s *ArcadeScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return hints(s.keys.Confirm, s.keys.Cancel)
	}
	if s.Revealing() {
		return []layout.KeyHint{{Key: "…", Description: "Revealing"}}
	}
	bs := []key.Binding{s.keys.Bat, s.keys.Ball, s.keys.Stump, s.keys.Reset}
	if s.rounds != nil {
		bs = append(bs, s.keys.History)
	}
	bs = append(bs, s.keys.Quit)
	return hints(bs...)
}

func hints(bs ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bs))
	for _, b := range bs {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}

func (s *ArcadeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		return s, s.complete()

	case roundDoneMsg:
		s.pending = game.MoveUnspecified
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.last = msg.Result
		return s, nil

	case resetDoneMsg:
		s.last = nil
		s.errMsg = ""
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ArcadeScreen) handleKey(msg tea.KeyPressMsg) (router.Screen, tea.Cmd) {
	if s.confirmReset {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.confirmReset = false
			return s, s.reset()
		case key.Matches(msg, s.keys.Cancel):
			s.confirmReset = false
		}
		return s, nil
	}

	if mv, ok := s.keys.moveFor(msg); ok {
		return s, s.submit(mv)
	}

	// Everything else waits until the pending round lands.
	if s.Revealing() {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Reset):
		s.confirmReset = true
	case key.Matches(msg, s.keys.History):
		if s.rounds != nil {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.rounds)}
			}
		}
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

// submit starts a round and schedules its reveal.
func (s *ArcadeScreen) submit(mv game.Move) tea.Cmd {
	if err := s.game.BeginRound(mv); err != nil {
		if !errors.Is(err, round.ErrRoundInFlight) {
			s.errMsg = err.Error()
		}
		return nil
	}
	s.pending = mv
	s.errMsg = ""

	if s.revealDelay <= 0 {
		return func() tea.Msg { return revealMsg{} }
	}
	return tea.Tick(s.revealDelay, func(time.Time) tea.Msg {
		return revealMsg{}
	})
}

func (s *ArcadeScreen) complete() tea.Cmd {
	g := s.game
	return func() tea.Msg {
		res, err := g.CompleteRound(context.Background())
		return roundDoneMsg{Result: res, Err: err}
	}
}

func (s *ArcadeScreen) reset() tea.Cmd {
	g := s.game
	return func() tea.Msg {
		g.ResetGame(context.Background())
		return resetDoneMsg{}
	}
}
