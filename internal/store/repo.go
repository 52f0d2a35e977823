// Package store persists the score record and the round history in a local
// SQLite database.
package store

import (
	"context"
	"time"

	"github.com/abhisek/batball/internal/progression"
)

// ScoreSlot is the key-value slot holding the serialized score record.
const ScoreSlot = "score"

// ScoreRepo loads, saves and clears the persisted score record.
type ScoreRepo interface {
	// Load returns the stored record. When nothing is stored it returns the
	// initial record and a nil error. When the stored value cannot be read
	// or fails validation it returns the initial record together with the
	// reason; callers treat that as "no prior score".
	Load(ctx context.Context) (progression.ScoreRecord, error)

	// Save replaces the stored record.
	Save(ctx context.Context, rec progression.ScoreRecord) error

	// Clear removes the stored record.
	Clear(ctx context.Context) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	SessionID string // restrict to one session when set
}

// RoundEventData captures one completed round for the history log.
type RoundEventData struct {
	RoundID      string
	SessionID    string
	PlayerMove   string
	OpponentMove string
	Outcome      string
	Points       int
	Combo        int
	PowerLevel   string
	Timestamp    time.Time
}

// RoundEventRecord is a round read back from the log.
type RoundEventRecord struct {
	RoundEventData
	Sequence int64
}

// RoundRepo provides append and query access to the round history.
type RoundRepo interface {
	// AppendRound records a completed round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// RecentRounds returns rounds newest first.
	RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error)

	// Clear deletes every logged round.
	Clear(ctx context.Context) error
}
