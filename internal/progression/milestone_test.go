package progression

import "testing"

func TestStreakMilestone(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, ""},
		{2, ""},
		{3, "Hat-trick!"},
		{4, "Hat-trick!"},
		{5, "On Fire!"},
		{9, "On Fire!"},
		{10, "Unstoppable!"},
		{15, "Legendary Run!"},
		{40, "Legendary Run!"},
	}

	for _, tt := range tests {
		if got := StreakMilestone(tt.streak); got != tt.want {
			t.Errorf("StreakMilestone(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{3, 5},
		{7, 10},
		{14, 15},
		{15, 0},
	}

	for _, tt := range tests {
		if got := NextMilestone(tt.current); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestMilestones_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Milestones() {
		if seen[m.Label] {
			t.Errorf("duplicate milestone label %q", m.Label)
		}
		seen[m.Label] = true
	}
	if len(seen) != 4 {
		t.Errorf("got %d milestones, want 4", len(seen))
	}
}
