package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/batball/internal/progression"
)

// ErrCorruptRecord indicates a stored slot could not be decoded into a
// valid record.
type ErrCorruptRecord struct {
	Slot string
	Err  error
}

func (e *ErrCorruptRecord) Error() string {
	return fmt.Sprintf("corrupt %s record: %v", e.Slot, e.Err)
}

func (e *ErrCorruptRecord) Unwrap() error { return e.Err }

// scoreRepo implements ScoreRepo on the kv_slots table.
type scoreRepo struct {
	db *sql.DB
}

func (r *scoreRepo) Load(ctx context.Context) (progression.ScoreRecord, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv_slots WHERE name = ?`, ScoreSlot,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return progression.NewScoreRecord(), nil
	}
	if err != nil {
		return progression.NewScoreRecord(), fmt.Errorf("read score slot: %w", err)
	}

	rec, err := decodeScore([]byte(raw))
	if err != nil {
		return progression.NewScoreRecord(), &ErrCorruptRecord{Slot: ScoreSlot, Err: err}
	}
	return rec, nil
}

func (r *scoreRepo) Save(ctx context.Context, rec progression.ScoreRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv_slots (name, value, updated_at_ms) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at_ms = excluded.updated_at_ms`,
		ScoreSlot, string(b), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}
	return nil
}

func (r *scoreRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE name = ?`, ScoreSlot); err != nil {
		return fmt.Errorf("clear score: %w", err)
	}
	return nil
}

// decodeScore validates raw against the score schema and the record's own
// invariants before returning it.
func decodeScore(raw []byte) (progression.ScoreRecord, error) {
	if err := validateScoreJSON(raw); err != nil {
		return progression.ScoreRecord{}, err
	}

	var rec progression.ScoreRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return progression.ScoreRecord{}, fmt.Errorf("unmarshal score: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return progression.ScoreRecord{}, err
	}
	return rec, nil
}
