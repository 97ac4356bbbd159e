package domain

// Body identifies a tracked celestial body by its lowercase name.
type Body string

const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
	Pluto   Body = "pluto"
)

// IsLuminary reports whether b is the Sun or the Moon.
func (b Body) IsLuminary() bool {
	return b == Sun || b == Moon
}

// Title returns the display name, e.g. "Mercury".
func (b Body) Title() string {
	if b == "" {
		return ""
	}
	s := []byte(b)
	if s[0] >= 'a' && s[0] <= 'z' {
		s[0] -= 'a' - 'A'
	}
	return string(s)
}

// Sign is one of the twelve tropical zodiac signs.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Element groups signs into fire, earth, air and water.
type Element string

const (
	ElementUnknown Element = ""
	Fire           Element = "fire"
	Earth          Element = "earth"
	Air            Element = "air"
	Water          Element = "water"
)

// Modality groups signs into cardinal, fixed and mutable.
type Modality string

const (
	ModalityUnknown Modality = ""
	Cardinal        Modality = "cardinal"
	Fixed           Modality = "fixed"
	Mutable         Modality = "mutable"
)

// AspectType names an angular relationship between two bodies.
type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
)

// CalcMode selects the calculator strategy.
type CalcMode string

const (
	ModeDrift  CalcMode = "drift"
	ModeSeeded CalcMode = "seeded"
)

// CalcModes lists every selectable calculator strategy.
var CalcModes = []CalcMode{ModeDrift, ModeSeeded}

// Zodiac selects between tropical and sidereal sign assignment.
type Zodiac string

const (
	Tropical Zodiac = "tropical"
	Sidereal Zodiac = "sidereal"
)

// BodyState is the raw numeric state of one body on a given date.
// Latitude and Distance are zero when the calculator does not model them.
type BodyState struct {
	Longitude float64
	Latitude  float64
	Distance  float64
	Speed     float64
}

// MoonPhase is the lunar phase fraction together with its derived name
// and illumination percentage.
type MoonPhase struct {
	Phase        float64
	Name         string
	Illumination int
}

// CelestialState is everything a Calculator produces for one date.
type CelestialState struct {
	MoonPhase MoonPhase
	Bodies    map[Body]BodyState
}

// Aspect is a relationship between two bodies. Orb is the distance in
// degrees from the exact aspect angle.
type Aspect struct {
	BodyA Body
	BodyB Body
	Type  AspectType
	Orb   float64
}

// RetrogradeStatus reports whether a planet is retrograde.
type RetrogradeStatus struct {
	Planet       Body
	IsRetrograde bool
}

// ElementalBalance aggregates weighted element membership over bodies.
type ElementalBalance struct {
	Counts      map[Element]float64
	Percentages map[Element]float64
	Dominant    Element
	Weak        Element
}

// ModalBalance aggregates weighted modality membership over bodies.
type ModalBalance struct {
	Counts      map[Modality]float64
	Percentages map[Modality]float64
	Dominant    Modality
	Weak        Modality
}
