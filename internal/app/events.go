package app

import (
	"time"

	"github.com/randomtoy/astro-go/internal/domain"
)

// Intensity grades how strongly an event is expected to be felt.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// CelestialEvent is a notable configuration on a given date.
type CelestialEvent struct {
	Name        string
	Description string
	Intensity   Intensity
	Date        string
}

var aspectIntensity = map[domain.AspectType]Intensity{
	domain.Conjunction: IntensityHigh,
	domain.Opposition:  IntensityHigh,
	domain.Square:      IntensityMedium,
	domain.Trine:       IntensityMedium,
	domain.Sextile:     IntensityLow,
}

// deriveEvents lists the moon phase first, then retrograde planets, then
// aspects, each in the order received.
func deriveEvents(
	date time.Time,
	moon domain.MoonPhase,
	retro []domain.RetrogradeStatus,
	aspects []domain.Aspect,
	in domain.Influences,
) []CelestialEvent {
	day := date.Format(time.DateOnly)

	events := make([]CelestialEvent, 0, 1+len(retro)+len(aspects))
	events = append(events, CelestialEvent{
		Name:        moon.Name,
		Description: in.Phase(moon.Name),
		Intensity:   phaseIntensity(moon.Name),
		Date:        day,
	})

	for _, r := range retro {
		if !r.IsRetrograde {
			continue
		}
		intensity := IntensityMedium
		if r.Planet == domain.Mercury {
			intensity = IntensityHigh
		}
		events = append(events, CelestialEvent{
			Name:        r.Planet.Title() + " Retrograde",
			Description: in.Motion(r.Planet, true),
			Intensity:   intensity,
			Date:        day,
		})
	}

	for _, a := range aspects {
		events = append(events, CelestialEvent{
			Name:        a.BodyA.Title() + " " + string(a.Type) + " " + a.BodyB.Title(),
			Description: in.Aspect(a.Type),
			Intensity:   aspectIntensity[a.Type],
			Date:        day,
		})
	}

	return events
}

func phaseIntensity(name string) Intensity {
	switch name {
	case "New Moon", "Full Moon":
		return IntensityHigh
	case "First Quarter", "Last Quarter":
		return IntensityMedium
	default:
		return IntensityLow
	}
}
