package ledger

import "sort"

// Bucket aggregates the expenses of one category. An empty CategoryID is the
// uncategorized bucket, which also absorbs rows whose category was deleted.
type Bucket struct {
	CategoryID string
	Total      int64
	Percent    float64
}

// Breakdown groups all rows with a positive expense by category id and
// returns the buckets ordered by descending total, stable by first
// encounter on ties. Percent is each bucket's share of the total expense;
// with no expense rows the result is empty, avoiding a division by zero.
func (l *Ledger) Breakdown() []Bucket {
	totals := make(map[string]int64)
	var order []string
	for _, t := range l.transactions {
		if t.Expense <= 0 {
			continue
		}
		if _, seen := totals[t.CategoryID]; !seen {
			order = append(order, t.CategoryID)
		}
		totals[t.CategoryID] += t.Expense
	}
	if len(order) == 0 {
		return []Bucket{}
	}

	totalExpense := l.TotalExpense()
	buckets := make([]Bucket, 0, len(order))
	for _, id := range order {
		b := Bucket{CategoryID: id, Total: totals[id]}
		if totalExpense > 0 {
			b.Percent = float64(b.Total) / float64(totalExpense) * 100
		}
		buckets = append(buckets, b)
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
	return buckets
}
