// internal/generator/sales.go
package generator

import (
	"math"
	"time"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/domain"
)

// Discount behavior: roughly one in ten transactions carries a markdown.
const discountChance = 0.10

var discountChoices = []int{10, 15, 20}

// Sales generates transaction-level sales history starting at the catalog
// start date and spanning the requested number of months.
//
// Per (month, gym, product) triple the expected unit count is
//
//	category frequency x gym size multiplier x seasonality
//
// and the actual count is a Poisson draw around it, so some months run hot
// and some run cold. Each unit becomes its own row with a random day of
// month and an occasional discount.
func (g *Generator) Sales(months int) []domain.SalesTransaction {
	var records []domain.SalesTransaction

	start := catalog.StartDate
	for offset := 0; offset < months; offset++ {
		month := time.Month((int(start.Month())+offset-1)%12 + 1)
		year := start.Year() + (int(start.Month())+offset-1)/12
		season := catalog.Seasonality[month]
		days := daysInMonth(month)

		for _, gym := range g.cat.Gyms {
			sizeMult := catalog.SizeMultipliers[gym.Size]

			for _, product := range g.cat.Products {
				expected := catalog.CategoryFrequency(product.Category) * sizeMult * season
				units := g.poisson(expected)
				if units == 0 {
					continue
				}

				for u := 0; u < units; u++ {
					day := g.intBetween(1, days)
					saleDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

					discount := 0
					if g.rng.Float64() < discountChance {
						discount = discountChoices[g.rng.Intn(len(discountChoices))]
					}
					salePrice := round2(product.Retail * (1 - float64(discount)/100))

					records = append(records, domain.SalesTransaction{
						SaleDate:    saleDate,
						GymID:       gym.ID,
						GymName:     gym.Name,
						Region:      gym.Region,
						SKU:         product.SKU,
						ProductName: product.Name,
						Category:    product.Category,
						Vendor:      product.Vendor,
						UnitsSold:   1,
						RetailPrice: product.Retail,
						SalePrice:   salePrice,
						Cost:        product.Cost,
						DiscountPct: discount,
					})
				}
			}
		}
	}

	// Derived margin columns.
	for i := range records {
		r := &records[i]
		r.GrossMargin = round2(r.SalePrice - r.Cost)
		r.MarginPct = math.Round(r.GrossMargin/r.SalePrice*1000) / 10
	}

	return records
}

// daysInMonth returns the day count for the fixed 2025-2026 window. February
// is always 28 here; the window contains no leap year.
func daysInMonth(m time.Month) int {
	switch m {
	case time.February:
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
