package game

// outcomes is indexed [player-1][opponent-1] with columns Bat, Ball, Stump.
var outcomes = [3][3]Outcome{
	{OutcomeTie, OutcomeWin, OutcomeLost}, // Bat
	{OutcomeLost, OutcomeTie, OutcomeWin}, // Ball
	{OutcomeWin, OutcomeLost, OutcomeTie}, // Stump
}

// Resolve returns the outcome of player against opponent. Moves outside the
// three valid values resolve to OutcomeUnspecified.
func Resolve(player, opponent Move) Outcome {
	if !player.Valid() || !opponent.Valid() {
		return OutcomeUnspecified
	}
	return outcomes[player-1][opponent-1]
}
