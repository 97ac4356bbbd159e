package domain

import "math"

// RetrogradeOf reports whether body is retrograde for the given date seed:
// ((seed × multiplier) mod 100) / 100 is compared against the body's
// threshold. The luminaries are never retrograde.
func RetrogradeOf(body Body, dateSeed int) bool {
	if body.IsLuminary() {
		return false
	}

	mult, ok := seededMultipliers[body]
	if !ok {
		mult = defaultRetrogradeMultiplier
	}
	threshold, ok := retrogradeThresholds[body]
	if !ok {
		threshold = defaultRetrogradeThreshold
	}

	r := math.Mod(float64(dateSeed)*mult, 100)
	if r < 0 {
		r += 100
	}
	return r/100 < threshold
}

// RetrogradeStatuses evaluates every non-luminary body, in order.
func RetrogradeStatuses(bodies []Body, dateSeed int) []RetrogradeStatus {
	out := make([]RetrogradeStatus, 0, len(bodies))
	for _, b := range bodies {
		if b.IsLuminary() {
			continue
		}
		out = append(out, RetrogradeStatus{Planet: b, IsRetrograde: RetrogradeOf(b, dateSeed)})
	}
	return out
}
