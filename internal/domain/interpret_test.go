package domain_test

import (
	"testing"
	"time"

	"github.com/randomtoy/astro-go/internal/domain"
)

func TestMoonPhaseAt_ReferenceNewMoon(t *testing.T) {
	mp := domain.MoonPhaseAt(domain.ReferenceNewMoon)
	if !approx(mp.Phase, 0) {
		t.Errorf("expected phase 0, got %v", mp.Phase)
	}
	if mp.Illumination != 0 {
		t.Errorf("expected illumination 0, got %d", mp.Illumination)
	}
	if mp.Name != "New Moon" {
		t.Errorf("expected New Moon, got %s", mp.Name)
	}
}

func TestMoonPhaseAt_Cyclic(t *testing.T) {
	month := time.Duration(domain.SynodicMonth * float64(24*time.Hour))
	for _, day := range []time.Time{
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1969, time.July, 20, 20, 17, 0, 0, time.UTC),
		time.Date(2077, time.February, 2, 12, 0, 0, 0, time.UTC),
	} {
		a := domain.MoonPhaseAt(day)
		b := domain.MoonPhaseAt(day.Add(month))
		if !approx(a.Phase, b.Phase) {
			t.Errorf("%s: phase %v vs %v one synodic month later", day, a.Phase, b.Phase)
		}
		if a.Phase < 0 || a.Phase >= 1 {
			t.Errorf("%s: phase %v outside [0,1)", day, a.Phase)
		}
	}
}

func TestMoonPhaseAt_HalfCycleIsFull(t *testing.T) {
	half := time.Duration(domain.SynodicMonth / 2 * float64(24*time.Hour))
	mp := domain.MoonPhaseAt(domain.ReferenceNewMoon.Add(half))
	if mp.Name != "Full Moon" || mp.Illumination != 100 {
		t.Errorf("expected Full Moon at 100%%, got %s at %d%%", mp.Name, mp.Illumination)
	}
}

func TestMoonPhaseNameOf_Sweep(t *testing.T) {
	want := []string{
		"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
		"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent", "New Moon",
	}

	var got []string
	for i := 0; i < 1000; i++ {
		name := domain.MoonPhaseNameOf(float64(i) / 1000)
		if len(got) == 0 || got[len(got)-1] != name {
			got = append(got, name)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d bands, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("band %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestMoonPhaseNameOf_Boundaries(t *testing.T) {
	cases := map[float64]string{
		0:            "New Moon",
		1.0 / 16:     "Waxing Crescent",
		0.25:         "First Quarter",
		0.5:          "Full Moon",
		0.75:         "Last Quarter",
		15.0 / 16:    "New Moon",
		0.9999999999: "New Moon",
	}
	for phase, name := range cases {
		if got := domain.MoonPhaseNameOf(phase); got != name {
			t.Errorf("phase %v: expected %s, got %s", phase, name, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{
		0:      0,
		360:    0,
		-30:    330,
		725:    5,
		-720.5: 359.5,
	}
	for in, want := range cases {
		if got := domain.Normalize(in); !approx(got, want) {
			t.Errorf("Normalize(%v): expected %v, got %v", in, want, got)
		}
	}
	if got := domain.Normalize(-1e-15); got < 0 || got >= 360 {
		t.Errorf("Normalize(-1e-15) = %v outside [0,360)", got)
	}
}

func TestZodiacSignOf_Partition(t *testing.T) {
	for i, sign := range domain.ZodiacSigns {
		lo := float64(i * 30)
		if got := domain.ZodiacSignOf(lo); got != sign {
			t.Errorf("%v°: expected %s, got %s", lo, sign, got)
		}
		if got := domain.ZodiacSignOf(lo + 29.999); got != sign {
			t.Errorf("%v°: expected %s, got %s", lo+29.999, sign, got)
		}
	}

	if got := domain.ZodiacSignOf(-1); got != domain.Pisces {
		t.Errorf("-1°: expected Pisces, got %s", got)
	}
	if got := domain.ZodiacSignOf(360); got != domain.Aries {
		t.Errorf("360°: expected Aries, got %s", got)
	}
}

func TestElementAndModalityOf(t *testing.T) {
	cases := []struct {
		sign     domain.Sign
		element  domain.Element
		modality domain.Modality
	}{
		{domain.Aries, domain.Fire, domain.Cardinal},
		{domain.Taurus, domain.Earth, domain.Fixed},
		{domain.Gemini, domain.Air, domain.Mutable},
		{domain.Cancer, domain.Water, domain.Cardinal},
		{domain.Aquarius, domain.Air, domain.Fixed},
		{domain.Pisces, domain.Water, domain.Mutable},
	}
	for _, c := range cases {
		if got := domain.ElementOf(c.sign); got != c.element {
			t.Errorf("%s: expected %s, got %s", c.sign, c.element, got)
		}
		if got := domain.ModalityOf(c.sign); got != c.modality {
			t.Errorf("%s: expected %s, got %s", c.sign, c.modality, got)
		}
	}

	if domain.ElementOf("Ophiuchus") != domain.ElementUnknown {
		t.Error("expected unknown element for unrecognised sign")
	}
	if domain.ModalityOf("Ophiuchus") != domain.ModalityUnknown {
		t.Error("expected unknown modality for unrecognised sign")
	}
}

func TestSiderealLongitude(t *testing.T) {
	if got := domain.SiderealLongitude(30); !approx(got, 5.9) {
		t.Errorf("expected 5.9, got %v", got)
	}
	if got := domain.SiderealLongitude(10); !approx(got, 345.9) {
		t.Errorf("expected 345.9, got %v", got)
	}
}

func TestParseZodiac(t *testing.T) {
	if z, err := domain.ParseZodiac("Sidereal"); err != nil || z != domain.Sidereal {
		t.Errorf("expected sidereal, got %q (%v)", z, err)
	}
	if _, err := domain.ParseZodiac("vedic"); err != domain.ErrUnknownZodiac {
		t.Errorf("expected ErrUnknownZodiac, got %v", err)
	}
}

func TestAspectOf_Canonical(t *testing.T) {
	cases := map[float64]domain.AspectType{
		0:   domain.Conjunction,
		60:  domain.Sextile,
		90:  domain.Square,
		120: domain.Trine,
		180: domain.Opposition,
		5:   domain.Conjunction,
		355: domain.Conjunction,
		-64: domain.Sextile,
		173: domain.Opposition,
	}
	for angle, want := range cases {
		got, ok := domain.AspectOf(angle, domain.DefaultAspectOrb)
		if !ok || got != want {
			t.Errorf("%v°: expected %s, got %s (ok=%v)", angle, want, got, ok)
		}
	}

	for _, angle := range []float64{30, 45, 150, 105} {
		if got, ok := domain.AspectOf(angle, domain.DefaultAspectOrb); ok {
			t.Errorf("%v°: expected no aspect, got %s", angle, got)
		}
	}
}

func TestAspectOf_Symmetric(t *testing.T) {
	for _, angle := range []float64{0, 3, 58, 60, 87, 90, 118, 120, 176, 180} {
		a, okA := domain.AspectOf(angle, domain.DefaultAspectOrb)
		b, okB := domain.AspectOf(360-angle, domain.DefaultAspectOrb)
		if a != b || okA != okB {
			t.Errorf("%v° gave %s, %v° gave %s", angle, a, 360-angle, b)
		}
	}
}

func TestAspectOf_FirstMatchWins(t *testing.T) {
	// 75° is 15° from both sextile and square.
	got, ok := domain.AspectOf(75, 40)
	if !ok || got != domain.Sextile {
		t.Errorf("expected sextile to win, got %s", got)
	}
}

func TestAspectBetween_PerTypeOrbs(t *testing.T) {
	// 189° apart folds to 171°: 9° from opposition, within its 10° orb.
	a, ok := domain.AspectBetween(domain.Sun, domain.Mars, 10, 199, nil)
	if !ok || a.Type != domain.Opposition || !approx(a.Orb, 9) {
		t.Errorf("expected opposition with orb 9, got %+v (ok=%v)", a, ok)
	}

	// 67° apart: 7° from sextile, outside its 6° orb.
	if a, ok := domain.AspectBetween(domain.Sun, domain.Venus, 0, 67, nil); ok {
		t.Errorf("expected no aspect, got %+v", a)
	}

	// Types absent from the table are never matched.
	if _, ok := domain.AspectBetween(domain.Sun, domain.Moon, 0, 0, domain.OrbTable{domain.Trine: 8}); ok {
		t.Error("expected no conjunction when its orb is not configured")
	}
}

func TestFindAspects_PairOrder(t *testing.T) {
	lons := map[domain.Body]float64{
		domain.Sun:  0,
		domain.Moon: 120,
		domain.Mars: 240,
	}
	bodies := []domain.Body{domain.Sun, domain.Moon, domain.Mercury, domain.Mars}

	got := domain.FindAspects(bodies, lons, domain.DefaultOrbs())
	want := []struct{ a, b domain.Body }{
		{domain.Sun, domain.Moon},
		{domain.Sun, domain.Mars},
		{domain.Moon, domain.Mars},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d aspects, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].BodyA != w.a || got[i].BodyB != w.b || got[i].Type != domain.Trine {
			t.Errorf("aspect %d: expected %s trine %s, got %+v", i, w.a, w.b, got[i])
		}
	}
}

func TestElementalBalanceOf_Uniform(t *testing.T) {
	signs := map[domain.Body]domain.Sign{
		domain.Sun:     domain.Aries,
		domain.Moon:    domain.Leo,
		domain.Mercury: domain.Taurus,
		domain.Venus:   domain.Gemini,
	}
	bal := domain.ElementalBalanceOf(signs, nil)

	if bal.Counts[domain.Fire] != 2 || bal.Counts[domain.Water] != 0 {
		t.Errorf("unexpected counts: %v", bal.Counts)
	}
	if bal.Percentages[domain.Fire] != 50 || bal.Percentages[domain.Earth] != 25 {
		t.Errorf("unexpected percentages: %v", bal.Percentages)
	}
	if bal.Dominant != domain.Fire || bal.Weak != domain.Water {
		t.Errorf("expected fire/water, got %s/%s", bal.Dominant, bal.Weak)
	}
}

func TestElementalBalanceOf_Weighted(t *testing.T) {
	signs := map[domain.Body]domain.Sign{
		domain.Sun:     domain.Cancer,
		domain.Jupiter: domain.Aries,
		domain.Saturn:  domain.Leo,
	}
	bal := domain.ElementalBalanceOf(signs, domain.WeightedBalance())

	if bal.Dominant != domain.Water {
		t.Errorf("expected water to dominate by weight, got %s", bal.Dominant)
	}
	if bal.Percentages[domain.Water] != 60 || bal.Percentages[domain.Fire] != 40 {
		t.Errorf("unexpected percentages: %v", bal.Percentages)
	}
}

func TestElementalBalanceOf_TieBreak(t *testing.T) {
	signs := map[domain.Body]domain.Sign{
		domain.Sun:  domain.Cancer,
		domain.Moon: domain.Virgo,
	}
	for i := 0; i < 20; i++ {
		bal := domain.ElementalBalanceOf(signs, nil)
		if bal.Dominant != domain.Earth {
			t.Fatalf("expected earth to win the tie over water, got %s", bal.Dominant)
		}
		if bal.Weak != domain.Fire {
			t.Fatalf("expected fire to win the tie for weak, got %s", bal.Weak)
		}
	}
}

func TestElementalBalanceOf_Rounding(t *testing.T) {
	signs := map[domain.Body]domain.Sign{
		domain.Sun:  domain.Aries,
		domain.Moon: domain.Taurus,
		domain.Mars: domain.Gemini,
	}
	bal := domain.ElementalBalanceOf(signs, nil)
	if bal.Percentages[domain.Fire] != 33.3 {
		t.Errorf("expected 33.3, got %v", bal.Percentages[domain.Fire])
	}
}

func TestElementalBalanceOf_Empty(t *testing.T) {
	bal := domain.ElementalBalanceOf(nil, nil)
	if bal.Dominant != domain.Fire || bal.Weak != domain.Fire {
		t.Errorf("expected fire/fire for an empty chart, got %s/%s", bal.Dominant, bal.Weak)
	}
	if bal.Percentages[domain.Air] != 0 {
		t.Errorf("expected 0%%, got %v", bal.Percentages[domain.Air])
	}
}

func TestModalBalanceOf(t *testing.T) {
	signs := map[domain.Body]domain.Sign{
		domain.Sun:     domain.Aries,
		domain.Moon:    domain.Taurus,
		domain.Mercury: domain.Leo,
		domain.Venus:   "Ophiuchus",
	}
	bal := domain.ModalBalanceOf(signs, nil)

	if bal.Counts[domain.Fixed] != 2 || bal.Counts[domain.Cardinal] != 1 {
		t.Errorf("unexpected counts: %v", bal.Counts)
	}
	if bal.Dominant != domain.Fixed || bal.Weak != domain.Mutable {
		t.Errorf("expected fixed/mutable, got %s/%s", bal.Dominant, bal.Weak)
	}
	if bal.Percentages[domain.Fixed] != 66.7 {
		t.Errorf("expected 66.7, got %v", bal.Percentages[domain.Fixed])
	}
}

func TestRetrogradeOf(t *testing.T) {
	cases := []struct {
		body domain.Body
		seed int
		want bool
	}{
		{domain.Mercury, 3, true},   // 11.1/100 < 0.19
		{domain.Mercury, 10, false}, // 37/100
		{domain.Venus, 10, false},   // 22/100 >= 0.07
		{domain.Mars, 50, false},    // 90/100
		{domain.Jupiter, 10, true},  // 8/100 < 0.30
		{domain.Saturn, 50, true},   // 20/100 < 0.36
		{"chiron", 10, true},        // default multiplier 1, threshold 0.2
		{"chiron", 50, false},
	}
	for _, c := range cases {
		if got := domain.RetrogradeOf(c.body, c.seed); got != c.want {
			t.Errorf("%s seed=%d: expected %v, got %v", c.body, c.seed, c.want, got)
		}
	}
}

func TestRetrogradeOf_UsesSeededMultipliers(t *testing.T) {
	// 2024-01-01 has dateSeed 738761.
	want := map[domain.Body]bool{
		domain.Mercury: true,  // 0.157
		domain.Venus:   false, // 0.742
		domain.Mars:    false, // 0.698
		domain.Jupiter: true,  // 0.088
		domain.Saturn:  true,  // 0.044
		domain.Uranus:  false, // 0.522
		domain.Neptune: false, // 0.761
		domain.Pluto:   true,  // 0.3805
	}
	for body, w := range want {
		if got := domain.RetrogradeOf(body, 738761); got != w {
			t.Errorf("%s: expected %v, got %v", body, w, got)
		}
	}
}

func TestRetrogradeOf_LuminariesNeverRetrograde(t *testing.T) {
	for seed := -500; seed < 5000; seed += 7 {
		if domain.RetrogradeOf(domain.Sun, seed) || domain.RetrogradeOf(domain.Moon, seed) {
			t.Fatalf("luminary retrograde at seed %d", seed)
		}
	}
}

func TestRetrogradeStatuses_SkipsLuminaries(t *testing.T) {
	got := domain.RetrogradeStatuses(domain.ClassicalBodies, 1)
	if len(got) != 5 {
		t.Fatalf("expected 5 planets, got %d", len(got))
	}
	if got[0].Planet != domain.Mercury || !got[0].IsRetrograde {
		t.Errorf("expected mercury retrograde first, got %+v", got[0])
	}
}

func TestBody_Title(t *testing.T) {
	if domain.Mercury.Title() != "Mercury" {
		t.Errorf("unexpected title %q", domain.Mercury.Title())
	}
}
