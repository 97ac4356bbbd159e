package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/astro-go/internal/app"
	"github.com/randomtoy/astro-go/internal/domain"
	"github.com/randomtoy/astro-go/internal/metrics"
	"github.com/randomtoy/astro-go/internal/ports"
)

const cacheControl = "public, max-age=300, stale-while-revalidate=600"

type Handler struct {
	svc         *app.AstroService
	cache       ports.ResponseCache
	metrics     *metrics.Collector
	errorDetail bool
	now         func() time.Time
}

type Option func(*Handler)

// WithCache memoizes encoded responses in c.
func WithCache(c ports.ResponseCache) Option {
	return func(h *Handler) { h.cache = c }
}

// WithMetrics records cache lookups and readings on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithErrorDetail exposes internal error text in 500 responses.
func WithErrorDetail(on bool) Option {
	return func(h *Handler) { h.errorDetail = on }
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func NewHandler(svc *app.AstroService, opts ...Option) *Handler {
	h := &Handler{svc: svc, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/health", h.Health)
	e.GET("/api/astro", h.Astro)
	e.GET("/api/astro/", h.Astro)
	e.GET("/api/astro/:date", h.Astro)
	if h.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.metrics.Handler()))
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Astro(c echo.Context) error {
	raw := c.Param("date")
	if raw == "" {
		raw = c.QueryParam("date")
	}
	date, err := domain.ParseDate(raw, h.now())
	if err != nil {
		return mapError(c, err, h.errorDetail)
	}

	mode := h.svc.DefaultMode()
	if q := c.QueryParam("mode"); q != "" {
		if mode, err = domain.ParseCalcMode(q); err != nil {
			return mapError(c, err, h.errorDetail)
		}
	}

	zodiac := domain.Tropical
	if q := c.QueryParam("zodiac"); q != "" {
		if zodiac, err = domain.ParseZodiac(q); err != nil {
			return mapError(c, err, h.errorDetail)
		}
	}

	ctx := c.Request().Context()
	key := "astro:" + date.Format(time.RFC3339) + ":" + string(mode) + ":" + string(zodiac)

	if h.cache != nil {
		body, ok, err := h.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "response cache lookup failed", "key", key, "error", err)
		}
		h.metrics.RecordCacheLookup(ok)
		if ok {
			c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)
			return c.JSONBlob(http.StatusOK, body)
		}
	}

	reading, err := h.svc.Reading(ctx, app.ReadingRequest{Date: date, Mode: mode, Zodiac: zodiac})
	if err != nil {
		return mapError(c, err, h.errorDetail)
	}
	h.metrics.RecordReading(string(reading.Mode), string(reading.Zodiac))

	body, err := json.Marshal(ToResponse(reading))
	if err != nil {
		return mapError(c, err, h.errorDetail)
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, body); err != nil {
			slog.WarnContext(ctx, "response cache store failed", "key", key, "error", err)
		}
	}

	c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)
	return c.JSONBlob(http.StatusOK, body)
}

// ToResponse converts a reading into its wire shape.
func ToResponse(r app.Reading) AstroResponse {
	positions := make(map[string]PositionResp, len(r.Positions))
	for b, p := range r.Positions {
		pr := PositionResp{
			Longitude: p.Longitude,
			Speed:     p.Speed,
			Sign:      string(p.Sign),
		}
		if p.Distance > 0 {
			lat, dist := p.Latitude, p.Distance
			pr.Latitude, pr.Distance = &lat, &dist
		}
		positions[string(b)] = pr
	}

	aspects := make([]AspectResp, len(r.Aspects))
	for i, a := range r.Aspects {
		aspects[i] = AspectResp{
			BodyA: string(a.BodyA),
			BodyB: string(a.BodyB),
			Type:  string(a.Type),
			Orb:   a.Orb,
		}
	}

	retro := make([]RetrogradeResp, len(r.Retrograde))
	for i, rs := range r.Retrograde {
		retro[i] = RetrogradeResp{
			Planet:       rs.Planet.Title(),
			IsRetrograde: rs.IsRetrograde,
			Influence:    rs.Influence,
		}
	}

	events := make([]EventResp, len(r.Events))
	for i, ev := range r.Events {
		events[i] = EventResp{
			Name:        ev.Name,
			Description: ev.Description,
			Intensity:   string(ev.Intensity),
			Date:        ev.Date,
		}
	}

	return AstroResponse{
		Date:   r.Date.Format(time.DateOnly),
		Mode:   string(r.Mode),
		Zodiac: string(r.Zodiac),
		MoonPhase: MoonPhaseResp{
			Value:        r.MoonPhase.Phase,
			Name:         r.MoonPhase.Name,
			Illumination: r.MoonPhase.Illumination,
		},
		Positions:       positions,
		SunSign:         string(r.SunSign),
		Elements:        elementsResp(r.Elements),
		Modalities:      modalitiesResp(r.Modalities),
		Aspects:         aspects,
		Retrograde:      retro,
		CelestialEvents: events,
	}
}

func elementsResp(b domain.ElementalBalance) BalanceResp {
	out := BalanceResp{
		Counts:      make(map[string]float64, len(b.Counts)),
		Percentages: make(map[string]float64, len(b.Percentages)),
		Dominant:    string(b.Dominant),
		Weak:        string(b.Weak),
	}
	for _, e := range domain.ElementOrder {
		out.Counts[string(e)] = b.Counts[e]
		out.Percentages[string(e)] = b.Percentages[e]
	}
	return out
}

func modalitiesResp(b domain.ModalBalance) BalanceResp {
	out := BalanceResp{
		Counts:      make(map[string]float64, len(b.Counts)),
		Percentages: make(map[string]float64, len(b.Percentages)),
		Dominant:    string(b.Dominant),
		Weak:        string(b.Weak),
	}
	for _, m := range domain.ModalityOrder {
		out.Counts[string(m)] = b.Counts[m]
		out.Percentages[string(m)] = b.Percentages[m]
	}
	return out
}

func mapError(c echo.Context, err error, detail bool) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrInvalidDate.Error()})
	case errors.Is(err, domain.ErrUnknownMode):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrUnknownMode.Error()})
	case errors.Is(err, domain.ErrUnknownZodiac):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrUnknownZodiac.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		resp := ErrorResponse{Error: "internal error"}
		if detail {
			resp.Detail = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, resp)
	}
}
