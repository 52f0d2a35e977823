package progression

// PowerLevel is the tier derived from cumulative experience. It scales the
// points earned per round and skews the opponent's move distribution.
type PowerLevel string

const (
	PowerNormal    PowerLevel = "normal"
	PowerSuper     PowerLevel = "super"
	PowerUltra     PowerLevel = "ultra"
	PowerLegendary PowerLevel = "legendary"
)

// Experience required to enter each tier above normal.
const (
	SuperThreshold     = 100
	UltraThreshold     = 200
	LegendaryThreshold = 300
)

// AllPowerLevels returns all tiers in order from lowest to highest.
func AllPowerLevels() []PowerLevel {
	return []PowerLevel{PowerNormal, PowerSuper, PowerUltra, PowerLegendary}
}

// PowerLevelFor derives the tier for the given experience. The highest
// threshold met wins.
func PowerLevelFor(experience int) PowerLevel {
	switch {
	case experience >= LegendaryThreshold:
		return PowerLegendary
	case experience >= UltraThreshold:
		return PowerUltra
	case experience >= SuperThreshold:
		return PowerSuper
	default:
		return PowerNormal
	}
}

// Multiplier returns the points multiplier for the tier.
func (p PowerLevel) Multiplier() int {
	switch p {
	case PowerSuper:
		return 2
	case PowerUltra:
		return 3
	case PowerLegendary:
		return 4
	default:
		return 1
	}
}

// ExtraWeight is the number of additional copies of the favored move added
// to the opponent's sampling pool.
func (p PowerLevel) ExtraWeight() int {
	switch p {
	case PowerSuper:
		return 1
	case PowerUltra:
		return 2
	case PowerLegendary:
		return 3
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the tier.
func (p PowerLevel) DisplayName() string {
	switch p {
	case PowerNormal:
		return "Normal"
	case PowerSuper:
		return "Super"
	case PowerUltra:
		return "Ultra"
	case PowerLegendary:
		return "Legendary"
	default:
		return string(p)
	}
}

// Icon returns the display icon for the tier.
func (p PowerLevel) Icon() string {
	switch p {
	case PowerSuper:
		return "⚡"
	case PowerUltra:
		return "🔥"
	case PowerLegendary:
		return "👑"
	default:
		return "✦"
	}
}
