package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/domain"
)

func TestPurchaseOrderInvariants(t *testing.T) {
	cat := catalog.Default()
	g := New(cat, catalog.DefaultSeed)

	rows := g.PurchaseOrders(120)
	require.Len(t, rows, 120)
	assert.Equal(t, "PO-2025-0001", rows[0].PONumber)
	assert.Equal(t, "PO-2025-0120", rows[119].PONumber)

	for _, r := range rows {
		vendor, ok := cat.VendorByName(r.Vendor)
		require.True(t, ok, "unknown vendor %q", r.Vendor)
		assert.Equal(t, vendor.LeadTimeDays, r.LeadTimeDays)
		assert.Equal(t, r.PODate.AddDate(0, 0, vendor.LeadTimeDays), r.ExpectedDelivery)

		assert.True(t, r.PODate.After(catalog.StartDate), "%s: order date before window", r.PONumber)
		assert.False(t, r.PODate.After(catalog.HorizonEnd), "%s: order date after horizon", r.PONumber)

		switch r.Status {
		case domain.POReceived:
			require.NotNil(t, r.ActualDelivery, r.PONumber)
			require.NotNil(t, r.OnTime, r.PONumber)
			require.NotNil(t, r.DeliveryVarianceDays, r.PONumber)
			assert.Equal(t, *r.OnTime, *r.DeliveryVarianceDays <= 0)
			assert.Equal(t, r.ExpectedDelivery.AddDate(0, 0, *r.DeliveryVarianceDays), *r.ActualDelivery)
			assert.False(t, r.ActualDelivery.After(catalog.HorizonEnd))
		case domain.POOpen:
			assert.Nil(t, r.ActualDelivery, r.PONumber)
			assert.Nil(t, r.OnTime, r.PONumber)
			assert.Nil(t, r.DeliveryVarianceDays, r.PONumber)
			assert.True(t, r.ExpectedDelivery.After(catalog.HorizonEnd), r.PONumber)
		case domain.POInTransit:
			assert.Nil(t, r.ActualDelivery, r.PONumber)
			assert.Nil(t, r.OnTime, r.PONumber)
			assert.Nil(t, r.DeliveryVarianceDays, r.PONumber)
			assert.False(t, r.ExpectedDelivery.After(catalog.HorizonEnd), r.PONumber)
		default:
			t.Fatalf("%s: unexpected status %q", r.PONumber, r.Status)
		}

		lineup := cat.ProductsByVendor(r.Vendor)
		assert.GreaterOrEqual(t, r.NumLineItems, 1)
		assert.LessOrEqual(t, r.NumLineItems, min(5, len(lineup)))
		assert.GreaterOrEqual(t, r.TotalUnits, 10*r.NumLineItems)
		assert.LessOrEqual(t, r.TotalUnits, 99*r.NumLineItems)
		assert.Greater(t, r.TotalCost, 0.0)
	}
}

func TestPerfectlyReliableVendorIsNeverLate(t *testing.T) {
	cat := catalog.New(
		nil,
		[]catalog.Vendor{{Name: "Acme Holds", LeadTimeDays: 10, MinOrder: 100, Reliability: 1.0}},
		[]catalog.Product{
			{SKU: "AC-001", Name: "Acme Jug Set", Category: "Training", Vendor: "Acme Holds", Cost: 50, Retail: 99.95},
			{SKU: "AC-002", Name: "Acme Crimp Rail", Category: "Training", Vendor: "Acme Holds", Cost: 30, Retail: 59.95},
			{SKU: "AC-003", Name: "Acme Sloper Pair", Category: "Training", Vendor: "Acme Holds", Cost: 40, Retail: 79.95},
		},
	)
	g := New(cat, catalog.DefaultSeed)

	received := 0
	for _, r := range g.PurchaseOrders(200) {
		if r.Status != domain.POReceived {
			continue
		}
		received++
		require.NotNil(t, r.DeliveryVarianceDays)
		assert.GreaterOrEqual(t, *r.DeliveryVarianceDays, -3, r.PONumber)
		assert.LessOrEqual(t, *r.DeliveryVarianceDays, 1, r.PONumber)
		assert.True(t, *r.OnTime == (*r.DeliveryVarianceDays <= 0))
	}
	require.NotZero(t, received, "expected some received orders in a 200-order sample")
}

func TestPONumberFormat(t *testing.T) {
	g := New(catalog.Default(), catalog.DefaultSeed)

	for i, r := range g.PurchaseOrders(5) {
		assert.Equal(t, fmt.Sprintf("PO-2025-%04d", i+1), r.PONumber)
	}
}
