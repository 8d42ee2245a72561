package console

// Badge is the display label/variant pair derived from a status value.
type Badge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// BadgeSet maps status values to badges. Lookup is pure and recomputed per
// render; nothing is cached.
type BadgeSet map[string]Badge

// Lookup resolves a status, falling back to a secondary badge echoing the
// raw value so unknown statuses still render.
func (b BadgeSet) Lookup(status string) Badge {
	if badge, ok := b[status]; ok {
		return badge
	}
	return Badge{Label: status, Variant: "secondary"}
}

// CountBy tallies records per key by full traversal.
func CountBy[T Record](records []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, rec := range records {
		out[key(rec)]++
	}
	return out
}

// SumBy totals a numeric field by full traversal.
func SumBy[T Record](records []T, val func(T) float64) float64 {
	var total float64
	for _, rec := range records {
		total += val(rec)
	}
	return total
}
