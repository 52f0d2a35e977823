// Package progression turns round outcomes into score, experience, level,
// streak, combo and power-meter updates.
package progression

import (
	"time"

	"github.com/abhisek/batball/internal/game"
)

// Base points per outcome before multipliers.
const (
	WinPoints  = 20
	TiePoints  = 5
	LostPoints = 0
)

// Power meter movement per round.
const (
	MeterGainPerCombo = 25
	MeterLoss         = 15
)

// Award describes what a single round earned.
type Award struct {
	Points          int
	ComboMultiplier int
	PowerMultiplier int
	PowerBefore     PowerLevel
	PowerAfter      PowerLevel
	LevelBefore     int
	LevelAfter      int

	// Milestone is set when this round's win landed exactly on a streak
	// milestone.
	Milestone string
}

// PowerChanged reports whether the round moved the player to a new tier.
func (a Award) PowerChanged() bool {
	return a.PowerBefore != a.PowerAfter
}

// LeveledUp reports whether the round raised the level.
func (a Award) LeveledUp() bool {
	return a.LevelAfter > a.LevelBefore
}

// Advance derives the next record and combo state from prev and the round's
// outcome. level is the power level in force before the round; it sets the
// points multiplier even when the round itself crosses a tier threshold.
// A window of zero or less uses DefaultComboWindow.
func Advance(prev ScoreRecord, outcome game.Outcome, level PowerLevel, combo ComboState, now time.Time, window time.Duration) (ScoreRecord, ComboState, Award) {
	if window <= 0 {
		window = DefaultComboWindow
	}

	award := Award{
		ComboMultiplier: 1,
		PowerMultiplier: level.Multiplier(),
		PowerBefore:     level,
		LevelBefore:     LevelFor(prev.Experience),
	}

	next := prev
	nextCombo := NewComboState()
	nextCombo.LastWinTime = combo.LastWinTime

	var base int
	switch outcome {
	case game.OutcomeWin:
		award.ComboMultiplier = combo.next(now, window)
		nextCombo = ComboState{Multiplier: award.ComboMultiplier, LastWinTime: now}
		base = WinPoints
	case game.OutcomeTie:
		base = TiePoints
	case game.OutcomeLost:
		base = LostPoints
	default:
		award.PowerAfter = level
		award.LevelAfter = award.LevelBefore
		return prev, combo, award
	}

	award.Points = base * award.ComboMultiplier * award.PowerMultiplier

	if outcome == game.OutcomeWin {
		next.Streak = prev.Streak + 1
	} else {
		next.Streak = 0
	}
	next.HighestStreak = max(prev.HighestStreak, next.Streak)

	next.Experience = max(prev.Experience, 0) + award.Points
	next.Level = LevelFor(next.Experience)

	meter := clampMeter(prev.PowerMeter)
	if outcome == game.OutcomeWin {
		meter += MeterGainPerCombo * award.ComboMultiplier
	} else {
		meter -= MeterLoss
	}
	next.PowerMeter = clampMeter(meter)

	switch outcome {
	case game.OutcomeWin:
		next.Win++
		award.Milestone = reachedMilestone(next.Streak)
	case game.OutcomeLost:
		next.Lost++
	case game.OutcomeTie:
		next.Tie++
	}

	award.PowerAfter = PowerLevelFor(next.Experience)
	award.LevelAfter = next.Level
	return next, nextCombo, award
}
