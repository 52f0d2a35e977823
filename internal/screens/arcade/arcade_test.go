package arcade

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/round"
	"github.com/abhisek/batball/internal/router"
	"github.com/abhisek/batball/internal/screens/history"
	"github.com/abhisek/batball/internal/store"
)

// fakeGame implements Game with a fixed opponent move.
type fakeGame struct {
	mu       sync.Mutex
	opponent game.Move
	pending  game.Move
	last     game.Move
	score    progression.ScoreRecord
	combo    progression.ComboState
	resets   int
	clock    time.Time
}

func newFakeGame(opponent game.Move) *fakeGame {
	return &fakeGame{
		opponent: opponent,
		score:    progression.NewScoreRecord(),
		combo:    progression.NewComboState(),
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (g *fakeGame) BeginRound(mv game.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !mv.Valid() {
		return game.ErrInvalidMove
	}
	if g.pending != game.MoveUnspecified {
		return round.ErrRoundInFlight
	}
	g.pending = mv
	return nil
}

func (g *fakeGame) CompleteRound(context.Context) (*round.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == game.MoveUnspecified {
		return nil, round.ErrNoRoundPending
	}
	mv := g.pending
	g.pending = game.MoveUnspecified
	g.last = mv

	g.clock = g.clock.Add(time.Second)
	outcome := game.Resolve(mv, g.opponent)
	var award progression.Award
	g.score, g.combo, award = progression.Advance(g.score, outcome, g.score.PowerLevel(), g.combo, g.clock, progression.DefaultComboWindow)

	return &round.Result{
		ID:           "r1",
		PlayerMove:   mv,
		OpponentMove: g.opponent,
		Outcome:      outcome,
		ScoreAfter:   g.score,
		Award:        award,
		PlayedAt:     g.clock,
	}, nil
}

func (g *fakeGame) ResetGame(context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resets++
	g.score = progression.NewScoreRecord()
	g.combo = progression.NewComboState()
	g.last = game.MoveUnspecified
}

func (g *fakeGame) CurrentScore() progression.ScoreRecord { return g.score }
func (g *fakeGame) PowerLevel() progression.PowerLevel   { return g.score.PowerLevel() }
func (g *fakeGame) ComboMultiplier() int                 { return g.combo.Multiplier }
func (g *fakeGame) LastMove() (game.Move, bool) {
	return g.last, g.last != game.MoveUnspecified
}

type emptyRounds struct{}

func (emptyRounds) AppendRound(context.Context, store.RoundEventData) error { return nil }
func (emptyRounds) Clear(context.Context) error                            { return nil }
func (emptyRounds) RecentRounds(context.Context, store.QueryOpts) ([]store.RoundEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// drain runs cmd and feeds resulting messages back until none remain.
func drain(s *ArcadeScreen, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = s.Update(msg)
	}
}

func TestPlayRoundThroughReveal(t *testing.T) {
	g := newFakeGame(game.MoveBall)
	s := New(g, emptyRounds{}, 0)

	_, cmd := s.Update(keyPress('b'))
	if !s.Revealing() {
		t.Fatal("expected screen to be revealing after a move")
	}
	if cmd == nil {
		t.Fatal("expected reveal command")
	}
	if !strings.Contains(s.View(80, 30), "Bowling") {
		t.Error("expected reveal placeholder in view")
	}

	drain(s, cmd)

	if s.Revealing() {
		t.Error("expected reveal to finish")
	}
	if s.last == nil || s.last.Outcome != game.OutcomeWin {
		t.Fatalf("expected a win, got %+v", s.last)
	}
	if g.score.Win != 1 || g.score.Experience != progression.WinPoints {
		t.Errorf("unexpected score %+v", g.score)
	}

	view := s.View(80, 30)
	if !strings.Contains(view, "+20 pts") {
		t.Errorf("expected points in view, got:\n%s", view)
	}
}

func TestRevealDelayUsesTick(t *testing.T) {
	g := newFakeGame(game.MoveBat)
	s := New(g, emptyRounds{}, 5*time.Millisecond)

	_, cmd := s.Update(keyPress('1'))
	if cmd == nil {
		t.Fatal("expected tick command")
	}
	if _, ok := cmd().(revealMsg); !ok {
		t.Fatal("expected revealMsg after the delay")
	}
}

func TestKeysIgnoredWhileRevealing(t *testing.T) {
	g := newFakeGame(game.MoveBat)
	s := New(g, emptyRounds{}, 0)

	s.Update(keyPress('b'))
	_, cmd := s.Update(keyPress('s'))
	if cmd != nil {
		t.Error("expected second move to be dropped while revealing")
	}
	if s.pending != game.MoveBat {
		t.Errorf("expected pending Bat, got %v", s.pending)
	}
	if s.errMsg != "" {
		t.Errorf("expected no error for an in-flight move, got %q", s.errMsg)
	}

	s.Update(keyPress('r'))
	if s.confirmReset {
		t.Error("expected reset to wait for the reveal")
	}
}

func TestAllMoveKeys(t *testing.T) {
	tests := []struct {
		key  rune
		want game.Move
	}{
		{'b', game.MoveBat},
		{'a', game.MoveBall},
		{'s', game.MoveStump},
		{'1', game.MoveBat},
		{'2', game.MoveBall},
		{'3', game.MoveStump},
	}

	for _, tt := range tests {
		s := New(newFakeGame(game.MoveBat), nil, 0)
		s.Update(keyPress(tt.key))
		if s.pending != tt.want {
			t.Errorf("key %q: expected %v, got %v", tt.key, tt.want, s.pending)
		}
	}
}

func TestResetConfirm(t *testing.T) {
	g := newFakeGame(game.MoveBall)
	s := New(g, emptyRounds{}, 0)

	_, cmd := s.Update(keyPress('b'))
	drain(s, cmd)

	s.Update(keyPress('r'))
	if !s.confirmReset {
		t.Fatal("expected reset confirmation")
	}
	if !strings.Contains(s.View(80, 30), "Reset the game?") {
		t.Error("expected confirmation dialog")
	}

	s.Update(keyPress('n'))
	if s.confirmReset || g.resets != 0 {
		t.Error("expected cancel to leave the game untouched")
	}

	s.Update(keyPress('r'))
	_, cmd = s.Update(keyPress('y'))
	drain(s, cmd)

	if g.resets != 1 {
		t.Errorf("expected 1 reset, got %d", g.resets)
	}
	if s.last != nil {
		t.Error("expected last result cleared after reset")
	}
	if g.score.Win != 0 {
		t.Errorf("expected cleared score, got %+v", g.score)
	}
}

func TestRoundErrorShown(t *testing.T) {
	s := New(newFakeGame(game.MoveBat), nil, 0)
	s.pending = game.MoveBat

	s.Update(roundDoneMsg{Err: errors.New("boom")})
	if s.Revealing() {
		t.Error("expected pending cleared after failure")
	}
	if !strings.Contains(s.View(80, 30), "boom") {
		t.Error("expected error in view")
	}
}

func TestHistoryKey(t *testing.T) {
	s := New(newFakeGame(game.MoveBat), emptyRounds{}, 0)

	_, cmd := s.Update(keyPress('h'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}

func TestHistoryKeyWithoutRepo(t *testing.T) {
	s := New(newFakeGame(game.MoveBat), nil, 0)

	if _, cmd := s.Update(keyPress('h')); cmd != nil {
		t.Error("expected no command without a round repo")
	}
	for _, h := range s.KeyHints() {
		if h.Description == "History" {
			t.Error("expected no history hint without a round repo")
		}
	}
}

func TestViewShowsProgress(t *testing.T) {
	g := newFakeGame(game.MoveBall)
	s := New(g, nil, 0)

	for range 3 {
		_, cmd := s.Update(keyPress('b'))
		drain(s, cmd)
	}

	view := s.View(90, 40)
	if !strings.Contains(view, progression.StreakMilestone(3)) {
		t.Errorf("expected hat-trick milestone in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Combo x3") {
		t.Errorf("expected combo in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Power") {
		t.Error("expected power meter in view")
	}
}
