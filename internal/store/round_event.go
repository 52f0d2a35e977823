package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// roundRepo implements RoundRepo on the round_events table. AUTOINCREMENT
// keeps sequences monotonic and never reused, even after Clear.
type roundRepo struct {
	db *sql.DB
}

func (r *roundRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO round_events (
			round_id, session_id, player_move, opponent_move,
			outcome, points, combo, power_level, timestamp_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RoundID, data.SessionID, data.PlayerMove, data.OpponentMove,
		data.Outcome, data.Points, data.Combo, data.PowerLevel, ts.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *roundRepo) RecentRounds(ctx context.Context, opts QueryOpts) ([]RoundEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}

	query := `SELECT sequence, round_id, session_id, player_move, opponent_move,
		outcome, points, combo, power_level, timestamp_ms FROM round_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	defer rows.Close()

	var records []RoundEventRecord
	for rows.Next() {
		var (
			rec  RoundEventRecord
			tsMs int64
		)
		err := rows.Scan(
			&rec.Sequence, &rec.RoundID, &rec.SessionID, &rec.PlayerMove, &rec.OpponentMove,
			&rec.Outcome, &rec.Points, &rec.Combo, &rec.PowerLevel, &tsMs,
		)
		if err != nil {
			return nil, fmt.Errorf("scan round event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(tsMs)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round events: %w", err)
	}
	return records, nil
}

func (r *roundRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM round_events`); err != nil {
		return fmt.Errorf("clear round events: %w", err)
	}
	return nil
}
