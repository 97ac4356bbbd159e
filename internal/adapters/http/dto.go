package http

// AstroResponse is the JSON shape returned by GET /api/astro.
type AstroResponse struct {
	Date            string                  `json:"date"`
	Mode            string                  `json:"mode"`
	Zodiac          string                  `json:"zodiac"`
	MoonPhase       MoonPhaseResp           `json:"moon_phase"`
	Positions       map[string]PositionResp `json:"positions"`
	SunSign         string                  `json:"sun_sign"`
	Elements        BalanceResp             `json:"elements"`
	Modalities      BalanceResp             `json:"modalities"`
	Aspects         []AspectResp            `json:"aspects"`
	Retrograde      []RetrogradeResp        `json:"retrograde"`
	CelestialEvents []EventResp             `json:"celestial_events"`
}

type MoonPhaseResp struct {
	Value        float64 `json:"value"`
	Name         string  `json:"name"`
	Illumination int     `json:"illumination"`
}

// PositionResp omits latitude and distance when the calculator does not
// model them.
type PositionResp struct {
	Longitude float64  `json:"longitude"`
	Speed     float64  `json:"speed"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Sign      string   `json:"sign"`
}

type BalanceResp struct {
	Counts      map[string]float64 `json:"counts"`
	Percentages map[string]float64 `json:"percentages"`
	Dominant    string             `json:"dominant"`
	Weak        string             `json:"weak"`
}

type AspectResp struct {
	BodyA string  `json:"body_a"`
	BodyB string  `json:"body_b"`
	Type  string  `json:"type"`
	Orb   float64 `json:"orb"`
}

type RetrogradeResp struct {
	Planet       string `json:"planet"`
	IsRetrograde bool   `json:"isRetrograde"`
	Influence    string `json:"influence"`
}

type EventResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Intensity   string `json:"intensity"`
	Date        string `json:"date"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
