package arcade

import "github.com/abhisek/batball/internal/round"

// revealMsg is sent when the reveal delay after a submission ends.
type revealMsg struct{}

// roundDoneMsg carries the resolved round back to the screen.
type roundDoneMsg struct {
	Result *round.Result
	Err    error
}

// resetDoneMsg is sent once the game has been reset.
type resetDoneMsg struct{}
