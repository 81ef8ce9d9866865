// internal/report/metrics.go
//
// Read-only aggregations over the generated tables. These feed the summary
// report and any downstream presentation layer; nothing here mutates the
// input rows.
package report

import (
	"sort"

	"github.com/climbops/retailgen/internal/domain"
)

// MonthRevenue is one point on the monthly trend line.
type MonthRevenue struct {
	Month   string // "2025-02"
	Revenue float64
}

// SalesMetrics aggregates the transaction table.
type SalesMetrics struct {
	TotalRevenue      float64
	TotalCOGS         float64
	GrossMargin       float64
	RevenueByCategory map[string]float64
	RevenueByRegion   map[string]float64
	MonthlyRevenue    []MonthRevenue
}

// TopCategory returns the category with the highest revenue.
func (m SalesMetrics) TopCategory() (string, float64) {
	var best string
	var bestRev float64
	for cat, rev := range m.RevenueByCategory {
		if rev > bestRev || (rev == bestRev && (best == "" || cat < best)) {
			best, bestRev = cat, rev
		}
	}
	return best, bestRev
}

// SummarizeSales rolls up revenue, cost and margin across all transactions.
func SummarizeSales(rows []domain.SalesTransaction) SalesMetrics {
	m := SalesMetrics{
		RevenueByCategory: make(map[string]float64),
		RevenueByRegion:   make(map[string]float64),
	}

	monthly := make(map[string]float64)
	for _, r := range rows {
		m.TotalRevenue += r.SalePrice
		m.TotalCOGS += r.Cost
		m.RevenueByCategory[r.Category] += r.SalePrice
		m.RevenueByRegion[r.Region] += r.SalePrice
		monthly[r.SaleDate.Format("2006-01")] += r.SalePrice
	}
	m.GrossMargin = m.TotalRevenue - m.TotalCOGS

	months := make([]string, 0, len(monthly))
	for k := range monthly {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		m.MonthlyRevenue = append(m.MonthlyRevenue, MonthRevenue{Month: k, Revenue: monthly[k]})
	}

	return m
}

// InventoryMetrics aggregates the snapshot table.
type InventoryMetrics struct {
	TotalRecords       int
	TotalValueCost     float64
	InStockRate        float64 // percent of SKU-locations In Stock or Overstock
	OutOfStockCount    int
	OverstockCount     int
	OverstockValueCost float64
	StatusCounts       map[domain.StockStatus]int
	GymInStockRate     map[string]float64 // gym name -> percent
}

// SummarizeInventory rolls up stock health across all SKU-locations.
func SummarizeInventory(rows []domain.InventoryRecord) InventoryMetrics {
	m := InventoryMetrics{
		TotalRecords:   len(rows),
		StatusCounts:   make(map[domain.StockStatus]int),
		GymInStockRate: make(map[string]float64),
	}

	healthy := 0
	gymTotal := make(map[string]int)
	gymHealthy := make(map[string]int)
	for _, r := range rows {
		m.TotalValueCost += r.InventoryValueCost
		m.StatusCounts[r.StockStatus]++
		gymTotal[r.GymName]++

		if r.StockStatus.Healthy() {
			healthy++
			gymHealthy[r.GymName]++
		}
		switch r.StockStatus {
		case domain.StockOutOfStock:
			m.OutOfStockCount++
		case domain.StockOverstock:
			m.OverstockCount++
			m.OverstockValueCost += r.InventoryValueCost
		}
	}

	if len(rows) > 0 {
		m.InStockRate = float64(healthy) / float64(len(rows)) * 100
	}
	for gym, total := range gymTotal {
		m.GymInStockRate[gym] = float64(gymHealthy[gym]) / float64(total) * 100
	}

	return m
}

// VendorMetrics aggregates delivery performance over the PO table. Only
// Received orders count toward on-time rates.
type VendorMetrics struct {
	ReceivedCount     int
	OverallOnTimeRate float64            // percent
	VendorOnTimeRate  map[string]float64 // vendor -> percent, Received orders only
	TotalSpend        float64
}

// BestVendor returns the vendor with the highest on-time rate.
func (m VendorMetrics) BestVendor() (string, float64) {
	var best string
	var bestRate float64 = -1
	for v, rate := range m.VendorOnTimeRate {
		if rate > bestRate || (rate == bestRate && (best == "" || v < best)) {
			best, bestRate = v, rate
		}
	}
	return best, bestRate
}

// SummarizePOs rolls up vendor performance and spend.
func SummarizePOs(rows []domain.PurchaseOrder) VendorMetrics {
	m := VendorMetrics{
		VendorOnTimeRate: make(map[string]float64),
	}

	onTime := 0
	vendorReceived := make(map[string]int)
	vendorOnTime := make(map[string]int)
	for _, r := range rows {
		m.TotalSpend += r.TotalCost
		if r.Status != domain.POReceived {
			continue
		}
		m.ReceivedCount++
		vendorReceived[r.Vendor]++
		if r.OnTime != nil && *r.OnTime {
			onTime++
			vendorOnTime[r.Vendor]++
		}
	}

	if m.ReceivedCount > 0 {
		m.OverallOnTimeRate = float64(onTime) / float64(m.ReceivedCount) * 100
	}
	for v, received := range vendorReceived {
		m.VendorOnTimeRate[v] = float64(vendorOnTime[v]) / float64(received) * 100
	}

	return m
}
