// internal/report/summary.go
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/climbops/retailgen/internal/domain"
)

// Action-item thresholds for the findings section.
const (
	lowInStockThreshold = 80.0 // percent, per gym
	lateVendorThreshold = 85.0 // percent on-time, per vendor
)

// WriteSummary prints the key-findings report for a generation run: revenue
// and margin, inventory health, vendor performance, and the action items a
// buyer would chase first.
func WriteSummary(w io.Writer, sales []domain.SalesTransaction, inventory []domain.InventoryRecord, pos []domain.PurchaseOrder) {
	sm := SummarizeSales(sales)
	im := SummarizeInventory(inventory)
	vm := SummarizePOs(pos)

	rule := "======================================================================"

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY OF KEY FINDINGS")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nREVENUE & MARGIN")
	fmt.Fprintf(w, "   Total Revenue (12 months):       $%s\n", formatUSD(sm.TotalRevenue, 2))
	fmt.Fprintf(w, "   Total Cost of Goods Sold:        $%s\n", formatUSD(sm.TotalCOGS, 2))
	fmt.Fprintf(w, "   Gross Margin:                    $%s (%.1f%%)\n",
		formatUSD(sm.GrossMargin, 2), pct(sm.GrossMargin, sm.TotalRevenue))
	if cat, rev := sm.TopCategory(); cat != "" {
		fmt.Fprintf(w, "   Top Category:                    %s ($%s)\n", cat, formatUSD(rev, 2))
	}

	fmt.Fprintln(w, "\nINVENTORY HEALTH")
	fmt.Fprintf(w, "   Total Inventory Value (at cost): $%s\n", formatUSD(im.TotalValueCost, 2))
	fmt.Fprintf(w, "   Overall In-Stock Rate:           %.1f%%\n", im.InStockRate)
	fmt.Fprintf(w, "   Out-of-Stock SKU-Locations:      %d\n", im.OutOfStockCount)
	fmt.Fprintf(w, "   Overstock SKU-Locations:         %d\n", im.OverstockCount)

	fmt.Fprintln(w, "\nVENDOR PERFORMANCE")
	if vm.ReceivedCount > 0 {
		best, bestRate := vm.BestVendor()
		fmt.Fprintf(w, "   Overall On-Time Delivery:        %.1f%%\n", vm.OverallOnTimeRate)
		fmt.Fprintf(w, "   Best Performing Vendor:          %s (%.1f%%)\n", best, bestRate)
		fmt.Fprintf(w, "   Total PO Spend (12 months):      $%s\n", formatUSD(vm.TotalSpend, 2))
	}

	fmt.Fprintln(w, "\nACTION ITEMS")
	writeActionItems(w, im, vm)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}

func writeActionItems(w io.Writer, im InventoryMetrics, vm VendorMetrics) {
	lowGyms := make([]string, 0)
	for gym, rate := range im.GymInStockRate {
		if rate < lowInStockThreshold {
			lowGyms = append(lowGyms, gym)
		}
	}
	sort.Strings(lowGyms)
	if len(lowGyms) > 0 {
		fmt.Fprintf(w, "   %d gym(s) below %.0f%% in-stock rate - prioritize in next allocation:\n",
			len(lowGyms), lowInStockThreshold)
		for _, gym := range lowGyms {
			fmt.Fprintf(w, "      -> %s: %.1f%%\n", gym, im.GymInStockRate[gym])
		}
	}

	if im.OverstockValueCost > 0 {
		fmt.Fprintf(w, "   $%s in overstock inventory - review for markdowns or transfers\n",
			formatUSD(im.OverstockValueCost, 2))
	}

	lateVendors := make([]string, 0)
	for vendor, rate := range vm.VendorOnTimeRate {
		if rate < lateVendorThreshold {
			lateVendors = append(lateVendors, vendor)
		}
	}
	sort.Strings(lateVendors)
	if len(lateVendors) > 0 {
		fmt.Fprintf(w, "   %d vendor(s) below %.0f%% on-time delivery:\n",
			len(lateVendors), lateVendorThreshold)
		for _, vendor := range lateVendors {
			fmt.Fprintf(w, "      -> %s: %.1f%% on-time\n", vendor, vm.VendorOnTimeRate[vendor])
		}
	}
}

func pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
