// internal/generator/inventory.go
package generator

import (
	"math"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/domain"
)

// Velocity never drops below half a unit per week so weeks of supply stays
// well defined.
const minWeeklyVelocity = 0.5

// Inventory generates the current snapshot: exactly one record per
// (gym, product) pair.
//
// Par levels follow category rules scaled by gym capacity. On-hand quantity
// varies around 70% of par, weekly velocity around 15% of par, and the stock
// status falls out of the weeks-of-supply thresholds.
func (g *Generator) Inventory() []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, 0, len(g.cat.Gyms)*len(g.cat.Products))

	for _, gym := range g.cat.Gyms {
		capacity := catalog.SizeCapacity[gym.Size]

		for _, product := range g.cat.Products {
			par := parLevel(product.Category, capacity)

			onHand := int(g.normal(float64(par)*0.7, float64(par)*0.3))
			if onHand < 0 {
				onHand = 0
			}

			velocity := math.Max(minWeeklyVelocity, g.normal(float64(par)*0.15, float64(par)*0.05))

			// Weeks of supply uses the unrounded velocity; the record
			// stores it rounded for readability.
			weeks := math.Round(float64(onHand)/velocity*10) / 10

			records = append(records, domain.InventoryRecord{
				GymID:                gym.ID,
				GymName:              gym.Name,
				Region:               gym.Region,
				GymSize:              gym.Size,
				SKU:                  product.SKU,
				ProductName:          product.Name,
				Category:             product.Category,
				Vendor:               product.Vendor,
				ParLevel:             par,
				OnHand:               onHand,
				AvgWeeklySales:       math.Round(velocity*10) / 10,
				WeeksOfSupply:        weeks,
				StockStatus:          domain.ClassifyStock(onHand, weeks),
				Cost:                 product.Cost,
				Retail:               product.Retail,
				InventoryValueCost:   round2(float64(onHand) * product.Cost),
				InventoryValueRetail: round2(float64(onHand) * product.Retail),
				DaysSinceLastReceipt: g.intBetween(1, 59),
			})
		}
	}

	return records
}

// parLevel applies the category stocking rules. Chalk needs deep stock;
// everything else tapers down from shoes and apparel.
func parLevel(category string, capacity float64) int {
	switch category {
	case "Chalk":
		return int(25 * capacity)
	case "Climbing Shoes", "Apparel":
		return int(10 * capacity)
	case "Harnesses", "Chalk Bags":
		return int(8 * capacity)
	default:
		return int(5 * capacity)
	}
}
