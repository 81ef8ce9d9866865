// internal/generator/po.go
package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/domain"
)

// PurchaseOrders generates n orders spread over the trailing year.
//
// Each order picks a random vendor, derives the expected delivery from the
// vendor lead time, and simulates the actual delivery from the vendor's
// reliability score: reliable deliveries land between 3 days early and 1 day
// late, unreliable ones between 3 and 14 days late. Status is read against
// the fixed observation horizon - anything landing on or before it is
// Received, anything not even expected by it is Open, and the rest is still
// In Transit.
func (g *Generator) PurchaseOrders(n int) []domain.PurchaseOrder {
	records := make([]domain.PurchaseOrder, 0, n)

	for i := 0; i < n; i++ {
		vendor := g.cat.Vendors[g.rng.Intn(len(g.cat.Vendors))]

		daysAgo := g.intBetween(1, 364)
		poDate := catalog.StartDate.AddDate(0, 0, 365-daysAgo)
		expected := poDate.AddDate(0, 0, vendor.LeadTimeDays)

		var variance int
		if g.rng.Float64() < vendor.Reliability {
			variance = g.intBetween(-3, 1)
		} else {
			variance = g.intBetween(3, 14)
		}
		actual := expected.AddDate(0, 0, variance)

		po := domain.PurchaseOrder{
			PONumber:         fmt.Sprintf("PO-2025-%04d", i+1),
			Vendor:           vendor.Name,
			PODate:           poDate,
			ExpectedDelivery: expected,
			LeadTimeDays:     vendor.LeadTimeDays,
		}

		switch {
		case !actual.After(catalog.HorizonEnd):
			onTime := variance <= 0
			v := variance
			po.Status = domain.POReceived
			po.ActualDelivery = &actual
			po.OnTime = &onTime
			po.DeliveryVarianceDays = &v
		case expected.After(catalog.HorizonEnd):
			po.Status = domain.POOpen
		default:
			po.Status = domain.POInTransit
		}

		// Line items: a handful of distinct products from the vendor's
		// catalog, each with a 10-99 unit quantity.
		lineup := g.cat.ProductsByVendor(vendor.Name)
		numLines := 0
		if len(lineup) > 0 {
			upper := min(6, len(lineup)+1)
			if upper < 2 {
				upper = 2
			}
			numLines = 1 + g.rng.Intn(upper-1)
			if numLines > len(lineup) {
				numLines = len(lineup)
			}
		}

		totalCost := decimal.Zero
		for _, idx := range g.rng.Perm(len(lineup))[:numLines] {
			qty := g.intBetween(10, 99)
			po.TotalUnits += qty
			totalCost = totalCost.Add(
				decimal.NewFromFloat(lineup[idx].Cost).Mul(decimal.NewFromInt(int64(qty))),
			)
		}
		po.NumLineItems = numLines
		po.TotalCost = totalCost.Round(2).InexactFloat64()

		records = append(records, po)
	}

	return records
}
