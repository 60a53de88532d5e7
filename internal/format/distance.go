package format

import (
	"fmt"
	"math"
)

// Distance renders a distance for display: meters under 1km, kilometers to one
// decimal place otherwise. A nil distance (unknown) renders as the empty string.
func Distance(km *float64) string {
	if km == nil {
		return ""
	}
	if *km < 1 {
		return fmt.Sprintf("%dm away", int(math.Round(*km*1000)))
	}
	return fmt.Sprintf("%.1fkm away", *km)
}
