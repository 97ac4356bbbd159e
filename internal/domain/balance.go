package domain

import "github.com/shopspring/decimal"

// ElementalBalanceOf tallies element membership of each body's sign.
// Bodies on unrecognised signs are ignored. Ties for dominant and weak are
// broken by ElementOrder.
func ElementalBalanceOf(signs map[Body]Sign, weights Weights) ElementalBalance {
	counts := make(map[Element]float64, len(ElementOrder))
	for _, e := range ElementOrder {
		counts[e] = 0
	}

	total := 0.0
	for b, s := range signs {
		e := ElementOf(s)
		if e == ElementUnknown {
			continue
		}
		w := weights.of(b)
		counts[e] += w
		total += w
	}

	out := ElementalBalance{
		Counts:      counts,
		Percentages: make(map[Element]float64, len(ElementOrder)),
	}
	for i, e := range ElementOrder {
		out.Percentages[e] = percentage(counts[e], total)
		if i == 0 || counts[e] > counts[out.Dominant] {
			out.Dominant = e
		}
		if i == 0 || counts[e] < counts[out.Weak] {
			out.Weak = e
		}
	}
	return out
}

// ModalBalanceOf is the modality counterpart of ElementalBalanceOf.
func ModalBalanceOf(signs map[Body]Sign, weights Weights) ModalBalance {
	counts := make(map[Modality]float64, len(ModalityOrder))
	for _, m := range ModalityOrder {
		counts[m] = 0
	}

	total := 0.0
	for b, s := range signs {
		m := ModalityOf(s)
		if m == ModalityUnknown {
			continue
		}
		w := weights.of(b)
		counts[m] += w
		total += w
	}

	out := ModalBalance{
		Counts:      counts,
		Percentages: make(map[Modality]float64, len(ModalityOrder)),
	}
	for i, m := range ModalityOrder {
		out.Percentages[m] = percentage(counts[m], total)
		if i == 0 || counts[m] > counts[out.Dominant] {
			out.Dominant = m
		}
		if i == 0 || counts[m] < counts[out.Weak] {
			out.Weak = m
		}
	}
	return out
}

// percentage returns part/total·100 rounded to one decimal place.
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromFloat(part).
		Div(decimal.NewFromFloat(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}
