package domain

import (
	"math"
	"strings"
)

// Normalize wraps deg into [0, 360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -tiny + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}
	return r
}

// ZodiacSignOf returns the sign owning the 30° bin that contains lon.
func ZodiacSignOf(lon float64) Sign {
	idx := int(Normalize(lon) / 30)
	if idx > 11 {
		idx = 11
	}
	return ZodiacSigns[idx]
}

// ElementOf returns ElementUnknown for unrecognised signs.
func ElementOf(s Sign) Element {
	return signElements[s]
}

// ModalityOf returns ModalityUnknown for unrecognised signs.
func ModalityOf(s Sign) Modality {
	return signModalities[s]
}

// SiderealLongitude applies the fixed ayanamsa correction.
func SiderealLongitude(lon float64) float64 {
	return Normalize(lon - Ayanamsa)
}

// ParseZodiac validates a raw zodiac string.
func ParseZodiac(raw string) (Zodiac, error) {
	switch z := Zodiac(strings.ToLower(raw)); z {
	case Tropical, Sidereal:
		return z, nil
	default:
		return "", ErrUnknownZodiac
	}
}
