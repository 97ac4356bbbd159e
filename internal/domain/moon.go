package domain

import (
	"math"
	"time"
)

var phaseBands = []struct {
	upper float64
	name  string
}{
	{1.0 / 16, "New Moon"},
	{3.0 / 16, "Waxing Crescent"},
	{5.0 / 16, "First Quarter"},
	{7.0 / 16, "Waxing Gibbous"},
	{9.0 / 16, "Full Moon"},
	{11.0 / 16, "Waning Gibbous"},
	{13.0 / 16, "Last Quarter"},
	{15.0 / 16, "Waning Crescent"},
}

// MoonPhaseAt returns the phase fraction in [0,1) measured from
// ReferenceNewMoon. Instants before the reference wrap the same way.
func MoonPhaseAt(t time.Time) MoonPhase {
	days := float64(t.UnixMilli()-ReferenceNewMoon.UnixMilli()) / msPerDay
	phase := math.Mod(math.Mod(days, SynodicMonth)+SynodicMonth, SynodicMonth) / SynodicMonth
	if phase >= 1 {
		phase = 0
	}

	return MoonPhase{
		Phase:        phase,
		Name:         MoonPhaseNameOf(phase),
		Illumination: IlluminationOf(phase),
	}
}

// MoonPhaseNameOf maps a phase fraction to one of eight names. Values at
// either end of the cycle are both "New Moon".
func MoonPhaseNameOf(phase float64) string {
	for _, band := range phaseBands {
		if phase < band.upper {
			return band.name
		}
	}
	return "New Moon"
}

// IlluminationOf returns the lit percentage, round(sin(phase·π)·100).
func IlluminationOf(phase float64) int {
	return int(math.Round(math.Sin(phase*math.Pi) * 100))
}
