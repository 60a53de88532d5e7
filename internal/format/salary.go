package format

import "github.com/danialhaz/gigmate/internal/types"

// periodSuffixes maps a salary period to its display suffix.
var periodSuffixes = map[types.SalaryPeriod]string{
	types.PeriodHourly:  "/hr",
	types.PeriodDaily:   "/day",
	types.PeriodWeekly:  "/wk",
	types.PeriodMonthly: "/mo",
	types.PeriodYearly:  "/yr",
}

// SalaryRange renders a salary range for display:
//   - both bounds absent: "Negotiable"
//   - only min: "From <min>"
//   - only max: "Up to <max>"
//   - equal bounds: the single amount
//   - otherwise: "<min> - <max>"
//
// A known period appends its suffix, e.g. "RM15.00 - RM25.00/hr".
func SalaryRange(min, max *float64, code string, period types.SalaryPeriod) string {
	suffix := periodSuffixes[period]

	switch {
	case min == nil && max == nil:
		return "Negotiable"
	case min != nil && max == nil:
		return "From " + Currency(*min, code) + suffix
	case min == nil:
		return "Up to " + Currency(*max, code) + suffix
	case *min == *max:
		return Currency(*min, code) + suffix
	default:
		return Currency(*min, code) + " - " + Currency(*max, code) + suffix
	}
}
