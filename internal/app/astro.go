package app

import (
	"context"
	"fmt"
	"time"

	"github.com/randomtoy/astro-go/internal/domain"
	"github.com/randomtoy/astro-go/internal/ports"
)

// ReadingRequest is the application-level input (no HTTP types).
type ReadingRequest struct {
	Date   time.Time
	Mode   domain.CalcMode
	Zodiac domain.Zodiac
}

// Position is a body's raw state plus the sign it falls in.
type Position struct {
	domain.BodyState
	Sign domain.Sign
}

// Retrograde is a planet's motion with its interpretive text.
type Retrograde struct {
	domain.RetrogradeStatus
	Influence string
}

// Reading is the application-level output.
type Reading struct {
	Date       time.Time
	Mode       domain.CalcMode
	Zodiac     domain.Zodiac
	MoonPhase  domain.MoonPhase
	Bodies     []domain.Body
	Positions  map[domain.Body]Position
	SunSign    domain.Sign
	Elements   domain.ElementalBalance
	Modalities domain.ModalBalance
	Aspects    []domain.Aspect
	Retrograde []Retrograde
	Events     []CelestialEvent
}

// Options tune the service. Zero values fall back to drift mode, all
// bodies, uniform weights and the default orbs.
type Options struct {
	DefaultMode domain.CalcMode
	Bodies      []domain.Body
	Weights     domain.Weights
	Orbs        domain.OrbTable
}

// AstroService runs the calculator and the interpretation layer for a date.
type AstroService struct {
	calculators map[domain.CalcMode]domain.Calculator
	catalog     ports.InfluenceCatalog
	bodies      []domain.Body
	weights     domain.Weights
	orbs        domain.OrbTable
	defaultMode domain.CalcMode
}

func NewAstroService(catalog ports.InfluenceCatalog, opts Options) (*AstroService, error) {
	bodies := opts.Bodies
	if len(bodies) == 0 {
		bodies = domain.AllBodies
	}
	orbs := opts.Orbs
	if orbs == nil {
		orbs = domain.DefaultOrbs()
	}
	mode := opts.DefaultMode
	if mode == "" {
		mode = domain.ModeDrift
	}

	calculators := make(map[domain.CalcMode]domain.Calculator, len(domain.CalcModes))
	for _, m := range domain.CalcModes {
		calc, err := domain.NewCalculator(m, bodies)
		if err != nil {
			return nil, fmt.Errorf("build %s calculator: %w", m, err)
		}
		calculators[m] = calc
	}
	if _, ok := calculators[mode]; !ok {
		return nil, fmt.Errorf("default mode %q: %w", mode, domain.ErrUnknownMode)
	}

	return &AstroService{
		calculators: calculators,
		catalog:     catalog,
		bodies:      bodies,
		weights:     opts.Weights,
		orbs:        orbs,
		defaultMode: mode,
	}, nil
}

// DefaultMode is the calculator used when a request does not name one.
func (s *AstroService) DefaultMode() domain.CalcMode {
	return s.defaultMode
}

func (s *AstroService) Reading(ctx context.Context, req ReadingRequest) (Reading, error) {
	mode := req.Mode
	if mode == "" {
		mode = s.defaultMode
	}
	calc, ok := s.calculators[mode]
	if !ok {
		return Reading{}, fmt.Errorf("select calculator %q: %w", mode, domain.ErrUnknownMode)
	}

	zodiac := req.Zodiac
	if zodiac == "" {
		zodiac = domain.Tropical
	}
	if zodiac != domain.Tropical && zodiac != domain.Sidereal {
		return Reading{}, fmt.Errorf("select zodiac %q: %w", zodiac, domain.ErrUnknownZodiac)
	}

	influences, err := s.catalog.GetInfluences(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("get influences: %w", err)
	}

	state := calc.Compute(req.Date)

	positions := make(map[domain.Body]Position, len(state.Bodies))
	longitudes := make(map[domain.Body]float64, len(state.Bodies))
	signs := make(map[domain.Body]domain.Sign, len(state.Bodies))
	for b, st := range state.Bodies {
		if zodiac == domain.Sidereal {
			st.Longitude = domain.SiderealLongitude(st.Longitude)
		}
		sign := domain.ZodiacSignOf(st.Longitude)
		positions[b] = Position{BodyState: st, Sign: sign}
		longitudes[b] = st.Longitude
		signs[b] = sign
	}

	aspects := domain.FindAspects(s.bodies, longitudes, s.orbs)

	statuses := domain.RetrogradeStatuses(s.bodies, domain.DateSeed(req.Date))
	retro := make([]Retrograde, len(statuses))
	for i, st := range statuses {
		retro[i] = Retrograde{
			RetrogradeStatus: st,
			Influence:        influences.Motion(st.Planet, st.IsRetrograde),
		}
	}

	return Reading{
		Date:       req.Date,
		Mode:       mode,
		Zodiac:     zodiac,
		MoonPhase:  state.MoonPhase,
		Bodies:     s.bodies,
		Positions:  positions,
		SunSign:    signs[domain.Sun],
		Elements:   domain.ElementalBalanceOf(signs, s.weights),
		Modalities: domain.ModalBalanceOf(signs, s.weights),
		Aspects:    aspects,
		Retrograde: retro,
		Events:     deriveEvents(req.Date, state.MoonPhase, statuses, aspects, influences),
	}, nil
}
