// internal/catalog/params.go
package catalog

import (
	"math"
	"time"
)

// Gym size classes.
const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

// DefaultSeed keeps the synthetic data reproducible between runs.
const DefaultSeed uint64 = 42

// Defaults for the two tunable generation parameters.
const (
	DefaultMonths         = 12
	DefaultPurchaseOrders = 120
)

// StartDate anchors the sales history: 12 months ending Jan 2026.
var StartDate = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

// HorizonEnd is the observation cutoff for purchase-order status: orders that
// land on or before this date are Received.
var HorizonEnd = time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

// SizeMultipliers scales expected sales volume by gym size.
var SizeMultipliers = map[string]float64{
	SizeLarge:  1.5,
	SizeMedium: 1.0,
	SizeSmall:  0.6,
}

// SizeCapacity scales inventory par levels by gym size. A small gym stocks
// proportionally deeper than it sells, so this is not SizeMultipliers.
var SizeCapacity = map[string]float64{
	SizeLarge:  1.5,
	SizeMedium: 1.0,
	SizeSmall:  0.7,
}

// categoryFrequency is the average transactions per month per gym for each
// category.
var categoryFrequency = map[string]float64{
	"Chalk":          30, // high volume consumable
	"Chalk Bags":     8,
	"Climbing Shoes": 12, // main revenue driver
	"Harnesses":      6,
	"Belay Devices":  4,
	"Carabiners":     7,
	"Apparel":        10,
	"Ropes":          2, // less frequent, high ticket
	"Training":       5,
}

// defaultCategoryFrequency is used for categories missing from the table.
const defaultCategoryFrequency = 5

// CategoryFrequency returns the expected monthly transaction count per gym
// for a category, defaulting rather than failing on unknown categories.
func CategoryFrequency(category string) float64 {
	if f, ok := categoryFrequency[category]; ok {
		return f
	}
	return defaultCategoryFrequency
}

// Seasonality maps calendar month to a demand multiplier.
var Seasonality = map[time.Month]float64{
	time.January:   0.70, // post-holiday slump
	time.February:  0.75,
	time.March:     0.90, // spring uptick
	time.April:     1.10,
	time.May:       1.20, // peak outdoor season
	time.June:      1.00,
	time.July:      0.85, // summer lull
	time.August:    0.90,
	time.September: 1.15, // back to gym season
	time.October:   1.25, // peak indoor season
	time.November:  1.00,
	time.December:  1.10, // holiday gifting
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
