package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbops/retailgen/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureSales() []domain.SalesTransaction {
	return []domain.SalesTransaction{
		{SaleDate: date(2025, time.February, 3), Category: "Chalk", Region: "Colorado", SalePrice: 100, Cost: 60},
		{SaleDate: date(2025, time.March, 9), Category: "Ropes", Region: "Texas", SalePrice: 50, Cost: 30},
	}
}

func fixtureInventory() []domain.InventoryRecord {
	return []domain.InventoryRecord{
		{GymName: "Movement Boulder", StockStatus: domain.StockInStock, InventoryValueCost: 100},
		{GymName: "Movement Boulder", StockStatus: domain.StockOverstock, InventoryValueCost: 200},
		{GymName: "Movement Denton", StockStatus: domain.StockOutOfStock},
		{GymName: "Movement Denton", StockStatus: domain.StockCriticalLow, InventoryValueCost: 40},
	}
}

func fixturePOs() []domain.PurchaseOrder {
	onTime := true
	late := false
	return []domain.PurchaseOrder{
		{Vendor: "Petzl", Status: domain.POReceived, OnTime: &onTime, TotalCost: 100},
		{Vendor: "Scarpa", Status: domain.POReceived, OnTime: &late, TotalCost: 50},
		{Vendor: "Beal", Status: domain.POOpen, TotalCost: 200},
	}
}

func TestSummarizeSales(t *testing.T) {
	m := SummarizeSales(fixtureSales())

	assert.Equal(t, 150.0, m.TotalRevenue)
	assert.Equal(t, 90.0, m.TotalCOGS)
	assert.Equal(t, 60.0, m.GrossMargin)
	assert.Equal(t, 100.0, m.RevenueByCategory["Chalk"])
	assert.Equal(t, 50.0, m.RevenueByRegion["Texas"])

	cat, rev := m.TopCategory()
	assert.Equal(t, "Chalk", cat)
	assert.Equal(t, 100.0, rev)

	require.Len(t, m.MonthlyRevenue, 2)
	assert.Equal(t, MonthRevenue{Month: "2025-02", Revenue: 100}, m.MonthlyRevenue[0])
	assert.Equal(t, MonthRevenue{Month: "2025-03", Revenue: 50}, m.MonthlyRevenue[1])
}

func TestSummarizeInventory(t *testing.T) {
	m := SummarizeInventory(fixtureInventory())

	assert.Equal(t, 4, m.TotalRecords)
	assert.Equal(t, 340.0, m.TotalValueCost)
	assert.Equal(t, 50.0, m.InStockRate)
	assert.Equal(t, 1, m.OutOfStockCount)
	assert.Equal(t, 1, m.OverstockCount)
	assert.Equal(t, 200.0, m.OverstockValueCost)
	assert.Equal(t, 100.0, m.GymInStockRate["Movement Boulder"])
	assert.Equal(t, 0.0, m.GymInStockRate["Movement Denton"])
}

func TestSummarizePOs(t *testing.T) {
	m := SummarizePOs(fixturePOs())

	assert.Equal(t, 2, m.ReceivedCount)
	assert.Equal(t, 350.0, m.TotalSpend, "spend counts every order, not just received")
	assert.Equal(t, 50.0, m.OverallOnTimeRate)
	assert.Equal(t, 100.0, m.VendorOnTimeRate["Petzl"])
	assert.Equal(t, 0.0, m.VendorOnTimeRate["Scarpa"])

	best, rate := m.BestVendor()
	assert.Equal(t, "Petzl", best)
	assert.Equal(t, 100.0, rate)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, fixtureSales(), fixtureInventory(), fixturePOs())

	out := buf.String()
	assert.Contains(t, out, "SUMMARY OF KEY FINDINGS")
	assert.Contains(t, out, "$150.00")
	assert.Contains(t, out, "Chalk ($100.00)")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "Petzl (100.0%)")
	assert.Contains(t, out, "1 gym(s) below 80% in-stock rate")
	assert.Contains(t, out, "-> Movement Denton: 0.0%")
	assert.Contains(t, out, "$200.00 in overstock inventory")
	assert.Contains(t, out, "1 vendor(s) below 85% on-time delivery")
	assert.Contains(t, out, "-> Scarpa: 0.0% on-time")
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "1,234.50", formatUSD(1234.5, 2))
	assert.Equal(t, "1,000,000.00", formatUSD(1000000, 2))
	assert.Equal(t, "999.00", formatUSD(999, 2))
	assert.Equal(t, "0.46", formatUSD(0.456, 2))
	assert.Equal(t, "-12,345.68", formatUSD(-12345.675, 2))
	assert.Equal(t, "1,250", formatUSD(1250.4, 0))
}
