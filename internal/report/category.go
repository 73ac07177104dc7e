package report

// UncategorizedID is the fallback bucket for obligations without a category
const UncategorizedID = "uncategorized"

// Categories groups the session's obligations by category, totaling the
// original, settled and outstanding amounts. The settled total is derived
// as original minus outstanding; the store carries no separate settled
// field. Output order follows first appearance in the input.
func (s *Session) Categories() []CategoryTotals {
	index := make(map[string]int)
	var totals []CategoryTotals

	for _, o := range s.items {
		id := UncategorizedID
		name := "Uncategorized"
		if o.CategoryID != nil && *o.CategoryID != "" {
			id = *o.CategoryID
			name = id
			if o.CategoryName != nil && *o.CategoryName != "" {
				name = *o.CategoryName
			}
		}

		i, ok := index[id]
		if !ok {
			i = len(totals)
			index[id] = i
			totals = append(totals, CategoryTotals{CategoryID: id, CategoryName: name})
		}

		outstanding := o.EffectiveOutstanding()
		totals[i].OriginalTotal += o.OriginalAmount
		totals[i].OutstandingTotal += outstanding
		totals[i].SettledTotal += o.OriginalAmount - outstanding
	}

	return totals
}
