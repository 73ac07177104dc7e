package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duewatch/internal/obligation"
)

func categorized(id, categoryID, categoryName string, original, outstanding int64) *obligation.Obligation {
	o := open(id, dueIn(10), outstanding)
	o.OriginalAmount = original
	if categoryID != "" {
		o.CategoryID = &categoryID
		o.CategoryName = &categoryName
	}
	return o
}

func TestCategoriesAggregateTotals(t *testing.T) {
	session := NewSession(obligation.KindPayable, []*obligation.Obligation{
		categorized("a", "cat-rent", "Rent", 10000, 10000),
		categorized("b", "cat-rent", "Rent", 5000, 2000),
		categorized("c", "cat-tools", "Tools", 3000, 0),
	}, today)

	totals := session.Categories()

	require.Len(t, totals, 2)
	assert.Equal(t, CategoryTotals{
		CategoryID:       "cat-rent",
		CategoryName:     "Rent",
		OriginalTotal:    15000,
		SettledTotal:     3000,
		OutstandingTotal: 12000,
	}, totals[0])
	assert.Equal(t, CategoryTotals{
		CategoryID:       "cat-tools",
		CategoryName:     "Tools",
		OriginalTotal:    3000,
		SettledTotal:     3000,
		OutstandingTotal: 0,
	}, totals[1])
}

func TestCategoriesFallBackToUncategorized(t *testing.T) {
	session := NewSession(obligation.KindPayable, []*obligation.Obligation{
		categorized("a", "", "", 1000, 1000),
		categorized("b", "", "", 2500, 500),
	}, today)

	totals := session.Categories()

	require.Len(t, totals, 1)
	assert.Equal(t, UncategorizedID, totals[0].CategoryID)
	assert.Equal(t, "Uncategorized", totals[0].CategoryName)
	assert.Equal(t, int64(3500), totals[0].OriginalTotal)
}

func TestCategoriesPreserveInsertionOrder(t *testing.T) {
	session := NewSession(obligation.KindPayable, []*obligation.Obligation{
		categorized("a", "cat-z", "Zeta", 100, 100),
		categorized("b", "cat-a", "Alpha", 200, 200),
		categorized("c", "cat-z", "Zeta", 300, 300),
	}, today)

	totals := session.Categories()

	require.Len(t, totals, 2)
	assert.Equal(t, "cat-z", totals[0].CategoryID)
	assert.Equal(t, "cat-a", totals[1].CategoryID)
}

func TestCategoriesExcludeSplitRecords(t *testing.T) {
	split := categorized("a", "cat-rent", "Rent", 9999, 9999)
	split.Status = obligation.StatusSplit

	session := NewSession(obligation.KindPayable, []*obligation.Obligation{
		split,
		categorized("b", "cat-rent", "Rent", 1000, 1000),
	}, today)

	totals := session.Categories()

	require.Len(t, totals, 1)
	assert.Equal(t, int64(1000), totals[0].OriginalTotal)
}
