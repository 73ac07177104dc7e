package report

import (
	"sort"

	"duewatch/internal/obligation"
)

// bucketDef is one fixed aging range. High 0 means unbounded (the 91+
// bucket). Ranges are contiguous and inclusive on the upper end, so every
// overdue obligation lands in exactly one bucket.
type bucketDef struct {
	label string
	low   int
	high  int
}

var agingBuckets = []bucketDef{
	{"Overdue up to 30 days", 1, 30},
	{"Overdue 31 to 60 days", 31, 60},
	{"Overdue 61 to 90 days", 61, 90},
	{"Overdue more than 90 days", 91, 0},
}

func (b bucketDef) contains(daysOverdue int) bool {
	if daysOverdue < b.low {
		return false
	}
	return b.high == 0 || daysOverdue <= b.high
}

// Aging builds the aging report: open obligations strictly past their due
// date, grouped into the fixed day ranges. Empty buckets are omitted from
// the output but the grand total always equals the sum of bucket totals.
func (s *Session) Aging() *AgingReport {
	type member struct {
		item        AgingItem
		daysOverdue int
	}
	members := make([][]member, len(agingBuckets))
	totals := make([]int64, len(agingBuckets))

	for _, o := range s.openDated() {
		daysOverdue := obligation.DaysBetween(*o.DueDate, s.today)
		if daysOverdue < 1 {
			// Due today or later: not yet aged.
			continue
		}
		for i, def := range agingBuckets {
			if !def.contains(daysOverdue) {
				continue
			}
			members[i] = append(members[i], member{
				item: AgingItem{
					ID:               o.ID,
					CounterpartyName: o.CounterpartyName,
					Description:      o.Description,
					DueDate:          o.DueDate.Format("2006-01-02"),
					DaysOverdue:      daysOverdue,
					Outstanding:      o.EffectiveOutstanding(),
				},
				daysOverdue: daysOverdue,
			})
			totals[i] += o.EffectiveOutstanding()
			break
		}
	}

	rep := &AgingReport{}
	for i, def := range agingBuckets {
		if len(members[i]) == 0 {
			continue
		}
		// Most overdue first for display.
		sort.SliceStable(members[i], func(a, b int) bool {
			return members[i][a].daysOverdue > members[i][b].daysOverdue
		})

		items := make([]AgingItem, len(members[i]))
		for j, m := range members[i] {
			items[j] = m.item
		}

		bucket := AgingBucket{
			Label:       def.label,
			DayRangeLow: def.low,
			Items:       items,
			TotalAmount: totals[i],
		}
		if def.high > 0 {
			high := def.high
			bucket.DayRangeHigh = &high
		}
		rep.Buckets = append(rep.Buckets, bucket)
		rep.GrandTotal += totals[i]
	}

	return rep
}
