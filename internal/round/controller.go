// Package round runs rounds against the computer and owns the player's
// score record for the lifetime of a game session.
package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/logging"
	"github.com/abhisek/batball/internal/opponent"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/store"
)

var (
	// ErrRoundInFlight is returned when a move is submitted while another
	// round is still being resolved.
	ErrRoundInFlight = errors.New("a round is already in progress")

	// ErrNoRoundPending is returned by CompleteRound without a prior
	// successful BeginRound.
	ErrNoRoundPending = errors.New("no round pending")
)

// MoveGenerator picks the opponent's move for a power level.
type MoveGenerator interface {
	NextMove(level progression.PowerLevel) game.Move
}

var _ MoveGenerator = (*opponent.Generator)(nil)

// Options configures a Controller.
type Options struct {
	// Scores persists the score record. Required.
	Scores store.ScoreRepo

	// Rounds logs completed rounds (nil disables the history log).
	Rounds store.RoundRepo

	// Generator picks opponent moves. Required.
	Generator MoveGenerator

	// ComboWindow defaults to progression.DefaultComboWindow.
	ComboWindow time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Result is the outcome of one completed round.
type Result struct {
	ID           string
	PlayerMove   game.Move
	OpponentMove game.Move
	Outcome      game.Outcome
	ScoreAfter   progression.ScoreRecord
	Award        progression.Award
	PlayedAt     time.Time
}

// Controller orchestrates rounds: opponent move, resolution, progression
// and persistence. Submissions follow a two-phase protocol: BeginRound
// locks out further moves until CompleteRound resolves the pending one.
type Controller struct {
	scores    store.ScoreRepo
	rounds    store.RoundRepo
	generator MoveGenerator
	window    time.Duration
	now       func() time.Time
	log       *slog.Logger
	sessionID string

	mu       sync.Mutex
	score    progression.ScoreRecord
	combo    progression.ComboState
	power    progression.PowerLevel
	lastMove game.Move
	pending  game.Move
}

// New creates a Controller and loads the persisted score. A missing or
// unreadable record starts the player from the initial record.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Scores == nil {
		return nil, errors.New("round: score repo is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("round: move generator is required")
	}

	c := &Controller{
		scores:    opts.Scores,
		rounds:    opts.Rounds,
		generator: opts.Generator,
		window:    opts.ComboWindow,
		now:       opts.Now,
		log:       logging.OrDiscard(opts.Logger),
		sessionID: uuid.NewString(),
		combo:     progression.NewComboState(),
	}
	if c.window <= 0 {
		c.window = progression.DefaultComboWindow
	}
	if c.now == nil {
		c.now = time.Now
	}

	score, err := c.scores.Load(ctx)
	if err != nil {
		c.log.Warn("score unavailable, starting fresh", "error", err)
		score = progression.NewScoreRecord()
	}
	c.score = score
	c.power = progression.PowerLevelFor(score.Experience)
	return c, nil
}

// SessionID identifies this controller's rounds in the history log.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// BeginRound submits the player's move and locks out further submissions
// until CompleteRound runs.
func (c *Controller) BeginRound(move game.Move) error {
	if !move.Valid() {
		return fmt.Errorf("%w: %d", game.ErrInvalidMove, int(move))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != game.MoveUnspecified {
		return ErrRoundInFlight
	}
	c.pending = move
	c.lastMove = move
	return nil
}

// CompleteRound resolves the pending round, persists the new score and
// unlocks submissions. Persistence failures are logged, not returned: the
// in-memory record stays authoritative and the next save reconciles it.
func (c *Controller) CompleteRound(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	move := c.pending
	if move == game.MoveUnspecified {
		return nil, ErrNoRoundPending
	}
	c.pending = game.MoveUnspecified

	now := c.now()
	opp := c.generator.NextMove(c.power)
	outcome := game.Resolve(move, opp)

	score, combo, award := progression.Advance(c.score, outcome, c.power, c.combo, now, c.window)
	c.score = score
	c.combo = combo
	c.power = award.PowerAfter

	res := &Result{
		ID:           uuid.NewString(),
		PlayerMove:   move,
		OpponentMove: opp,
		Outcome:      outcome,
		ScoreAfter:   score,
		Award:        award,
		PlayedAt:     now,
	}

	if err := c.scores.Save(ctx, score); err != nil {
		c.log.Warn("save score failed", "round", res.ID, "error", err)
	}
	c.appendRound(ctx, res)

	c.log.Debug("round complete",
		"round", res.ID,
		"player", move.String(),
		"opponent", opp.String(),
		"outcome", outcome.String(),
		"points", award.Points,
		"combo", award.ComboMultiplier,
		"power", string(award.PowerAfter),
	)
	if award.PowerChanged() {
		c.log.Info("power level changed", "from", string(award.PowerBefore), "to", string(award.PowerAfter))
	}
	return res, nil
}

// PlayRound runs both phases of a round back to back.
func (c *Controller) PlayRound(ctx context.Context, move game.Move) (*Result, error) {
	if err := c.BeginRound(move); err != nil {
		return nil, err
	}
	return c.CompleteRound(ctx)
}

// ResetGame restores the initial record, clears the session state and
// removes the persisted record and round history. Calling it repeatedly
// leaves the same initial record. Storage failures are logged.
func (c *Controller) ResetGame(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.score = progression.NewScoreRecord()
	c.combo = progression.NewComboState()
	c.power = progression.PowerNormal
	c.lastMove = game.MoveUnspecified
	c.pending = game.MoveUnspecified

	if err := c.scores.Clear(ctx); err != nil {
		c.log.Warn("clear score failed", "error", err)
	}
	if c.rounds != nil {
		if err := c.rounds.Clear(ctx); err != nil {
			c.log.Warn("clear round history failed", "error", err)
		}
	}
	c.log.Info("game reset")
}

// CurrentScore returns a copy of the current score record.
func (c *Controller) CurrentScore() progression.ScoreRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// PowerLevel returns the current power level.
func (c *Controller) PowerLevel() progression.PowerLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.power
}

// ComboMultiplier returns the combo multiplier of the latest win.
func (c *Controller) ComboMultiplier() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.combo.Multiplier
}

// LastMove returns the player's most recent submitted move.
func (c *Controller) LastMove() (game.Move, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMove, c.lastMove != game.MoveUnspecified
}

// InFlight reports whether a round is awaiting CompleteRound.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != game.MoveUnspecified
}

func (c *Controller) appendRound(ctx context.Context, res *Result) {
	if c.rounds == nil {
		return
	}
	err := c.rounds.AppendRound(ctx, store.RoundEventData{
		RoundID:      res.ID,
		SessionID:    c.sessionID,
		PlayerMove:   res.PlayerMove.String(),
		OpponentMove: res.OpponentMove.String(),
		Outcome:      res.Outcome.String(),
		Points:       res.Award.Points,
		Combo:        res.Award.ComboMultiplier,
		PowerLevel:   string(res.Award.PowerBefore),
		Timestamp:    res.PlayedAt,
	})
	if err != nil {
		c.log.Warn("append round failed", "round", res.ID, "error", err)
	}
}
