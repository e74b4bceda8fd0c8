// Package aggregate folds fragmented order records into one logical
// order per identifier.
//
// The order listing endpoint may return several records sharing one ID,
// each carrying only part of the item list (one per KOT batch). Dashboards
// run every fetch result through Merge before rendering.
package aggregate

import "resto-pos/internal/domain"

// Merge groups records by ID. The first record seen for an ID keeps all
// of its scalar fields; later records only contribute their items. The
// reported totals are NOT recomputed from the merged item list; they
// stay whatever the first fragment carried. Output follows first-
// occurrence order. Records without an ID are dropped.
func Merge(records []domain.Order) []domain.Order {
	byID := make(map[string]int, len(records))
	out := make([]domain.Order, 0, len(records))

	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		if idx, ok := byID[rec.ID]; ok {
			out[idx].Items = append(out[idx].Items, rec.Items...)
			continue
		}
		merged := rec
		merged.Items = append([]domain.LineItem(nil), rec.Items...)
		byID[rec.ID] = len(out)
		out = append(out, merged)
	}
	return out
}
