package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbops/retailgen/internal/catalog"
)

func TestSalesInvariants(t *testing.T) {
	cat := catalog.Default()
	g := New(cat, catalog.DefaultSeed)

	rows := g.Sales(3)
	require.NotEmpty(t, rows)

	known := make(map[string]bool)
	for _, c := range cat.Categories() {
		known[c] = true
	}

	windowEnd := catalog.StartDate.AddDate(0, 3, 0)
	for _, r := range rows {
		assert.Equal(t, 1, r.UnitsSold)
		assert.Contains(t, []int{0, 10, 15, 20}, r.DiscountPct)
		assert.Equal(t, round2(r.RetailPrice*(1-float64(r.DiscountPct)/100)), r.SalePrice)
		assert.Equal(t, round2(r.SalePrice-r.Cost), r.GrossMargin)
		assert.True(t, known[r.Category], "unknown category %q", r.Category)

		require.False(t, r.SaleDate.Before(catalog.StartDate), "sale %s before window", r.SaleDate)
		require.True(t, r.SaleDate.Before(windowEnd), "sale %s after window", r.SaleDate)
		assert.LessOrEqual(t, r.SaleDate.Day(), daysInMonth(r.SaleDate.Month()))
	}
}

func TestSalesSpanTwelveCalendarMonths(t *testing.T) {
	g := New(catalog.Default(), catalog.DefaultSeed)

	rows := g.Sales(12)
	months := make(map[string]bool)
	for _, r := range rows {
		months[r.SaleDate.Format("2006-01")] = true
	}

	// 12 months ending Jan 2026, wrapping the year boundary.
	assert.Len(t, months, 12)
	assert.True(t, months["2025-02"])
	assert.True(t, months["2025-12"])
	assert.True(t, months["2026-01"])
	assert.False(t, months["2025-01"])
	assert.False(t, months["2026-02"])
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, daysInMonth(time.February))
	assert.Equal(t, 30, daysInMonth(time.April))
	assert.Equal(t, 30, daysInMonth(time.November))
	assert.Equal(t, 31, daysInMonth(time.January))
	assert.Equal(t, 31, daysInMonth(time.December))
}
