package progression

import "time"

const (
	// MaxCombo caps the combo multiplier.
	MaxCombo = 5

	// DefaultComboWindow is how soon a win must follow the previous one to
	// extend the combo.
	DefaultComboWindow = 2000 * time.Millisecond
)

// ComboState is the transient, non-persisted combo tracking.
type ComboState struct {
	Multiplier  int
	LastWinTime time.Time
}

// NewComboState returns a combo at multiplier 1 with no prior win.
func NewComboState() ComboState {
	return ComboState{Multiplier: 1}
}

// next returns the combo that applies to a win at now.
func (c ComboState) next(now time.Time, window time.Duration) int {
	if c.LastWinTime.IsZero() {
		return 1
	}
	elapsed := now.Sub(c.LastWinTime)
	if elapsed < 0 || elapsed >= window {
		return 1
	}
	return min(max(c.Multiplier, 1)+1, MaxCombo)
}
