package domain

import "time"

const (
	// SynodicMonth is the mean period between new moons, in days.
	SynodicMonth = 29.53058867

	// Ayanamsa is the fixed offset between tropical and sidereal longitudes.
	Ayanamsa = 24.1

	msPerDay = 86_400_000

	// DefaultAspectOrb is the uniform tolerance used by AspectOf.
	DefaultAspectOrb = 8.0

	defaultRetrogradeThreshold  = 0.2
	defaultRetrogradeMultiplier = 1
)

// ReferenceNewMoon anchors every moon phase calculation.
var ReferenceNewMoon = time.Date(2025, time.May, 27, 11, 2, 0, 0, time.UTC)

// ZodiacSigns is ordered by ecliptic longitude, starting at 0° Aries.
var ZodiacSigns = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// ClassicalBodies are always tracked.
var ClassicalBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// AllBodies adds the outer planets to ClassicalBodies.
var AllBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// ElementOrder fixes iteration and tie-break priority for elements.
var ElementOrder = []Element{Fire, Earth, Air, Water}

// ModalityOrder fixes iteration and tie-break priority for modalities.
var ModalityOrder = []Modality{Cardinal, Fixed, Mutable}

var signElements = map[Sign]Element{
	Aries: Fire, Leo: Fire, Sagittarius: Fire,
	Taurus: Earth, Virgo: Earth, Capricorn: Earth,
	Gemini: Air, Libra: Air, Aquarius: Air,
	Cancer: Water, Scorpio: Water, Pisces: Water,
}

var signModalities = map[Sign]Modality{
	Aries: Cardinal, Cancer: Cardinal, Libra: Cardinal, Capricorn: Cardinal,
	Taurus: Fixed, Leo: Fixed, Scorpio: Fixed, Aquarius: Fixed,
	Gemini: Mutable, Virgo: Mutable, Sagittarius: Mutable, Pisces: Mutable,
}

// speeds are mean geocentric motions in degrees per day.
var speeds = map[Body]float64{
	Sun:     0.9856,
	Moon:    13.1764,
	Mercury: 1.383,
	Venus:   1.2,
	Mars:    0.524,
	Jupiter: 0.083,
	Saturn:  0.034,
	Uranus:  0.012,
	Neptune: 0.006,
	Pluto:   0.004,
}

// seededMultipliers drive longitude in seeded mode and the retrograde
// pseudo-probability in both modes.
var seededMultipliers = map[Body]float64{
	Sun:     1.0,
	Moon:    13.4,
	Mercury: 3.7,
	Venus:   2.2,
	Mars:    1.8,
	Jupiter: 0.8,
	Saturn:  0.4,
	Uranus:  0.2,
	Neptune: 0.1,
	Pluto:   0.05,
}

// retrogradeThresholds approximate the share of the year each planet
// spends retrograde.
var retrogradeThresholds = map[Body]float64{
	Mercury: 0.19,
	Venus:   0.07,
	Mars:    0.09,
	Jupiter: 0.30,
	Saturn:  0.36,
	Uranus:  0.40,
	Neptune: 0.40,
	Pluto:   0.42,
}

// aspectAngles is ordered; the order decides which type wins when orbs overlap.
var aspectAngles = []struct {
	Type  AspectType
	Angle float64
}{
	{Conjunction, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposition, 180},
}

// OrbTable maps each aspect type to its tolerance in degrees.
type OrbTable map[AspectType]float64

// DefaultOrbs are the per-type tolerances used between bodies.
func DefaultOrbs() OrbTable {
	return OrbTable{
		Conjunction: 8,
		Sextile:     6,
		Square:      7,
		Trine:       8,
		Opposition:  10,
	}
}

// Weights maps bodies to their contribution in balance calculations.
// A nil Weights counts every body once.
type Weights map[Body]float64

// WeightedBalance favours the luminaries and the inner planets.
func WeightedBalance() Weights {
	return Weights{
		Sun: 3, Moon: 3,
		Mercury: 2, Venus: 2, Mars: 2,
		Jupiter: 1, Saturn: 1, Uranus: 1, Neptune: 1, Pluto: 1,
	}
}

func (w Weights) of(b Body) float64 {
	if w == nil {
		return 1
	}
	if v, ok := w[b]; ok {
		return v
	}
	return 1
}

// SpeedOf returns the mean daily motion of b, or 0 for an unknown body.
func SpeedOf(b Body) float64 {
	return speeds[b]
}
