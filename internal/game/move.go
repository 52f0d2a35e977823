// Package game defines the three moves and the rule that resolves a round.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Move is one of the three symbolic game choices.
type Move int

const (
	MoveUnspecified Move = iota
	MoveBat
	MoveBall
	MoveStump
)

// ErrInvalidMove indicates a move outside Bat, Ball and Stump.
var ErrInvalidMove = errors.New("move must be one of Bat, Ball or Stump")

// AllMoves returns the three valid moves in display order.
func AllMoves() []Move {
	return []Move{MoveBat, MoveBall, MoveStump}
}

// Valid reports whether m is one of the three playable moves.
func (m Move) Valid() bool {
	return m >= MoveBat && m <= MoveStump
}

func (m Move) String() string {
	switch m {
	case MoveBat:
		return "Bat"
	case MoveBall:
		return "Ball"
	case MoveStump:
		return "Stump"
	default:
		return "Unspecified"
	}
}

// Icon returns the display icon for the move.
func (m Move) Icon() string {
	switch m {
	case MoveBat:
		return "🏏"
	case MoveBall:
		return "⚾"
	case MoveStump:
		return "🥅"
	default:
		return "?"
	}
}

// Beats returns the move that m defeats.
func (m Move) Beats() Move {
	switch m {
	case MoveBat:
		return MoveBall
	case MoveBall:
		return MoveStump
	case MoveStump:
		return MoveBat
	default:
		return MoveUnspecified
	}
}

// ParseMove converts user input such as "bat" or "STUMP" into a Move.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bat":
		return MoveBat, nil
	case "ball":
		return MoveBall, nil
	case "stump":
		return MoveStump, nil
	}
	return MoveUnspecified, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}
