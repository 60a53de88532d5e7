// Package format provides pure display formatting for match scores, money,
// distances and salary ranges. Every function is total: well-formed numeric
// input always yields a value and never panics.
package format

// Tier buckets a 0-100 match score for display.
type Tier string

const (
	TierExcellent Tier = "Excellent"
	TierGood      Tier = "Good"
	TierFair      Tier = "Fair"
	TierLow       Tier = "Low"
)

// Tier thresholds. A boundary value belongs to the higher tier: 80 is Excellent.
const (
	excellentMin = 80.0
	goodMin      = 60.0
	fairMin      = 40.0
)

// MatchTier maps a match score to its display tier.
func MatchTier(score float64) Tier {
	switch {
	case score >= excellentMin:
		return TierExcellent
	case score >= goodMin:
		return TierGood
	case score >= fairMin:
		return TierFair
	default:
		return TierLow
	}
}
