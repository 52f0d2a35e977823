package progression

// Milestone is a streak length with a celebratory label.
type Milestone struct {
	Streak int
	Label  string
}

var milestones = []Milestone{
	{Streak: 3, Label: "Hat-trick!"},
	{Streak: 5, Label: "On Fire!"},
	{Streak: 10, Label: "Unstoppable!"},
	{Streak: 15, Label: "Legendary Run!"},
}

// Milestones returns the streak milestones in ascending order.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones)
	return out
}

// StreakMilestone returns the label of the highest milestone met by streak,
// or "" below the first one.
func StreakMilestone(streak int) string {
	label := ""
	for _, m := range milestones {
		if streak >= m.Streak {
			label = m.Label
		}
	}
	return label
}

// NextMilestone returns the next milestone streak above current, or 0 once
// the last milestone has been passed.
func NextMilestone(current int) int {
	for _, m := range milestones {
		if m.Streak > current {
			return m.Streak
		}
	}
	return 0
}

// reachedMilestone returns the label when streak lands exactly on a milestone.
func reachedMilestone(streak int) string {
	for _, m := range milestones {
		if m.Streak == streak {
			return m.Label
		}
	}
	return ""
}
