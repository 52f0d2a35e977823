package progression

import (
	"errors"
	"fmt"
)

const (
	// PointsPerLevel is the experience span of one level.
	PointsPerLevel = 100

	// MaxPowerMeter is the upper bound of the power meter.
	MaxPowerMeter = 100
)

// ScoreRecord is the persisted progression state.
type ScoreRecord struct {
	Win           int `json:"win"`
	Lost          int `json:"lost"`
	Tie           int `json:"tie"`
	Streak        int `json:"streak"`
	HighestStreak int `json:"highestStreak"`
	PowerMeter    int `json:"powerMeter"`
	Experience    int `json:"experience"`
	Level         int `json:"level"`
}

// NewScoreRecord returns the initial record used on first run and after reset.
func NewScoreRecord() ScoreRecord {
	return ScoreRecord{Level: 1}
}

// LevelFor returns floor(experience/100)+1.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/PointsPerLevel + 1
}

// Rounds returns the number of rounds counted by the record.
func (r ScoreRecord) Rounds() int {
	return r.Win + r.Lost + r.Tie
}

// WinRate returns wins over rounds played (0.0-1.0), or 0 with no rounds.
func (r ScoreRecord) WinRate() float64 {
	n := r.Rounds()
	if n == 0 {
		return 0
	}
	return float64(r.Win) / float64(n)
}

// LevelProgress returns the experience earned inside the current level and
// the span needed to reach the next one.
func (r ScoreRecord) LevelProgress() (into, span int) {
	return r.Experience % PointsPerLevel, PointsPerLevel
}

// PowerLevel derives the tier from the record's experience.
func (r ScoreRecord) PowerLevel() PowerLevel {
	return PowerLevelFor(r.Experience)
}

// Validate checks the record's invariants.
func (r ScoreRecord) Validate() error {
	var errs []error
	if r.Win < 0 || r.Lost < 0 || r.Tie < 0 {
		errs = append(errs, errors.New("outcome counters must be non-negative"))
	}
	if r.Streak < 0 || r.Streak > r.Win {
		errs = append(errs, fmt.Errorf("streak %d must be within [0, win=%d]", r.Streak, r.Win))
	}
	if r.HighestStreak < r.Streak {
		errs = append(errs, fmt.Errorf("highestStreak %d below streak %d", r.HighestStreak, r.Streak))
	}
	if r.PowerMeter < 0 || r.PowerMeter > MaxPowerMeter {
		errs = append(errs, fmt.Errorf("powerMeter %d outside [0, %d]", r.PowerMeter, MaxPowerMeter))
	}
	if r.Experience < 0 {
		errs = append(errs, errors.New("experience must be non-negative"))
	} else if r.Level != LevelFor(r.Experience) {
		errs = append(errs, fmt.Errorf("level %d does not match experience %d", r.Level, r.Experience))
	}
	return errors.Join(errs...)
}

func clampMeter(v int) int {
	return min(max(v, 0), MaxPowerMeter)
}
