package domain

import "math"

// separation folds an angle into [0, 180], so that a and 360-a compare equal.
func separation(angle float64) float64 {
	s := Normalize(angle)
	if s > 180 {
		s = 360 - s
	}
	return s
}

// AspectOf returns the first canonical aspect whose angle lies within orb
// of the given angular difference. ok is false when none matches.
func AspectOf(angle, orb float64) (t AspectType, ok bool) {
	sep := separation(angle)
	for _, a := range aspectAngles {
		if math.Abs(sep-a.Angle) <= orb {
			return a.Type, true
		}
	}
	return "", false
}

// AspectBetween checks two longitudes against per-type orbs. Types are
// tried in canonical order and the first match wins.
func AspectBetween(bodyA, bodyB Body, lonA, lonB float64, orbs OrbTable) (Aspect, bool) {
	if orbs == nil {
		orbs = DefaultOrbs()
	}
	sep := separation(lonA - lonB)
	for _, a := range aspectAngles {
		orb, ok := orbs[a.Type]
		if !ok {
			continue
		}
		if diff := math.Abs(sep - a.Angle); diff <= orb {
			return Aspect{
				BodyA: bodyA,
				BodyB: bodyB,
				Type:  a.Type,
				Orb:   math.Round(diff*100) / 100,
			}, true
		}
	}
	return Aspect{}, false
}

// FindAspects checks every pair of bodies in the given order. Bodies with
// no entry in longitudes are skipped.
func FindAspects(bodies []Body, longitudes map[Body]float64, orbs OrbTable) []Aspect {
	var out []Aspect
	for i := 0; i < len(bodies); i++ {
		lonA, ok := longitudes[bodies[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			lonB, ok := longitudes[bodies[j]]
			if !ok {
				continue
			}
			if a, ok := AspectBetween(bodies[i], bodies[j], lonA, lonB, orbs); ok {
				out = append(out, a)
			}
		}
	}
	return out
}
