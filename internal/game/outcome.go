package game

import (
	"fmt"
	"strings"
)

// Outcome is the result of one round from the player's point of view.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeWin
	OutcomeLost
	OutcomeTie
)

// AllOutcomes returns the three round outcomes.
func AllOutcomes() []Outcome {
	return []Outcome{OutcomeWin, OutcomeLost, OutcomeTie}
}

// String returns the persisted name: "win", "lost" or "tie".
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLost:
		return "lost"
	case OutcomeTie:
		return "tie"
	default:
		return "unspecified"
	}
}

// DisplayName returns the banner shown after a round.
func (o Outcome) DisplayName() string {
	switch o {
	case OutcomeWin:
		return "You Won!"
	case OutcomeLost:
		return "Computer Won"
	case OutcomeTie:
		return "It's a Tie!"
	default:
		return ""
	}
}

// ParseOutcome converts a persisted outcome name back into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(s) {
	case "win":
		return OutcomeWin, nil
	case "lost":
		return OutcomeLost, nil
	case "tie":
		return OutcomeTie, nil
	}
	return OutcomeUnspecified, fmt.Errorf("unknown outcome %q", s)
}
