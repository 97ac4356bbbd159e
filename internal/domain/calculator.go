package domain

import (
	"math"
	"strings"
	"time"
)

// Calculator maps a date to raw celestial state. Implementations are pure:
// the same instant always yields the same state.
type Calculator interface {
	Mode() CalcMode
	Compute(t time.Time) CelestialState
}

// NewCalculator returns the strategy for mode, tracking the given bodies.
func NewCalculator(mode CalcMode, bodies []Body) (Calculator, error) {
	switch mode {
	case ModeDrift:
		return NewDriftCalculator(bodies), nil
	case ModeSeeded:
		return NewSeededCalculator(bodies), nil
	default:
		return nil, ErrUnknownMode
	}
}

// ParseCalcMode validates a raw mode string.
func ParseCalcMode(raw string) (CalcMode, error) {
	switch m := CalcMode(strings.ToLower(raw)); m {
	case ModeDrift, ModeSeeded:
		return m, nil
	default:
		return "", ErrUnknownMode
	}
}

// DriftCalculator advances each body continuously from a name-derived
// base offset at its mean daily speed.
type DriftCalculator struct {
	bodies []Body
}

func NewDriftCalculator(bodies []Body) *DriftCalculator {
	return &DriftCalculator{bodies: bodies}
}

func (*DriftCalculator) Mode() CalcMode { return ModeDrift }

func (c *DriftCalculator) Compute(t time.Time) CelestialState {
	days := float64(t.UnixMilli()) / msPerDay

	bodies := make(map[Body]BodyState, len(c.bodies))
	for _, b := range c.bodies {
		hash := float64(stableBodyHash(b))
		speed := SpeedOf(b)
		base := (hash + float64(len(b))) * 100

		bodies[b] = BodyState{
			Longitude: Normalize(base + days*speed),
			Latitude:  5 * math.Sin(days*0.01+hash),
			Distance:  1.0 + 0.5*math.Cos(days*0.01+hash),
			Speed:     speed,
		}
	}

	return CelestialState{
		MoonPhase: MoonPhaseAt(t),
		Bodies:    bodies,
	}
}

// SeededCalculator derives longitude from an integer date seed. It only
// changes once per calendar day.
type SeededCalculator struct {
	bodies []Body
}

func NewSeededCalculator(bodies []Body) *SeededCalculator {
	return &SeededCalculator{bodies: bodies}
}

func (*SeededCalculator) Mode() CalcMode { return ModeSeeded }

func (c *SeededCalculator) Compute(t time.Time) CelestialState {
	seed := float64(DateSeed(t))

	bodies := make(map[Body]BodyState, len(c.bodies))
	for _, b := range c.bodies {
		bodies[b] = BodyState{
			Longitude: Normalize(seed * seededMultipliers[b]),
			Speed:     SpeedOf(b),
		}
	}

	return CelestialState{
		MoonPhase: MoonPhaseAt(t),
		Bodies:    bodies,
	}
}

// DateSeed is day + month×30 + year×365 with a zero-based month,
// evaluated on the calendar date in t's own location.
func DateSeed(t time.Time) int {
	return t.Day() + (int(t.Month())-1)*30 + t.Year()*365
}

func stableBodyHash(b Body) int {
	sum := 0
	for _, r := range strings.ToLower(string(b)) {
		sum += int(r)
	}
	return sum
}
