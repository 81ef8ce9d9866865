// internal/export/csv.go
//
// Flat-file export of the generated tables. Runs only after all tables are
// fully materialized; generation itself does no I/O.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/domain"
)

const dateLayout = "2006-01-02"

// File names for the five exported tables.
const (
	SalesFile     = "sales_data.csv"
	InventoryFile = "inventory_data.csv"
	POFile        = "purchase_orders.csv"
	ProductsFile  = "product_catalog.csv"
	GymsFile      = "gym_locations.csv"
)

// WriteAll exports every table into dir, creating it if needed.
func WriteAll(dir string, sales []domain.SalesTransaction, inventory []domain.InventoryRecord, pos []domain.PurchaseOrder, cat *catalog.Catalog) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	if err := WriteSales(filepath.Join(dir, SalesFile), sales); err != nil {
		return fmt.Errorf("failed to export sales: %w", err)
	}
	if err := WriteInventory(filepath.Join(dir, InventoryFile), inventory); err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}
	if err := WritePurchaseOrders(filepath.Join(dir, POFile), pos); err != nil {
		return fmt.Errorf("failed to export purchase orders: %w", err)
	}
	if err := WriteProducts(filepath.Join(dir, ProductsFile), cat.Products); err != nil {
		return fmt.Errorf("failed to export product catalog: %w", err)
	}
	if err := WriteGyms(filepath.Join(dir, GymsFile), cat.Gyms); err != nil {
		return fmt.Errorf("failed to export gym locations: %w", err)
	}

	return nil
}

// WriteSales exports the transaction table.
func WriteSales(path string, rows []domain.SalesTransaction) error {
	header := []string{
		"sale_date", "gym_id", "gym_name", "region",
		"sku", "product_name", "category", "vendor",
		"units_sold", "retail_price", "sale_price", "cost",
		"discount_pct", "gross_margin", "margin_pct",
	}

	return writeCSV(path, header, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.SaleDate.Format(dateLayout),
			r.GymID,
			r.GymName,
			r.Region,
			r.SKU,
			r.ProductName,
			r.Category,
			r.Vendor,
			strconv.Itoa(r.UnitsSold),
			money(r.RetailPrice),
			money(r.SalePrice),
			money(r.Cost),
			strconv.Itoa(r.DiscountPct),
			money(r.GrossMargin),
			formatFloat(r.MarginPct, 1),
		}
	})
}

// WriteInventory exports the snapshot table.
func WriteInventory(path string, rows []domain.InventoryRecord) error {
	header := []string{
		"gym_id", "gym_name", "region", "gym_size",
		"sku", "product_name", "category", "vendor",
		"par_level", "on_hand", "avg_weekly_sales", "weeks_of_supply",
		"stock_status", "cost", "retail",
		"inventory_value_cost", "inventory_value_retail", "days_since_last_receipt",
	}

	return writeCSV(path, header, len(rows), func(i int) []string {
		r := rows[i]
		return []string{
			r.GymID,
			r.GymName,
			r.Region,
			r.GymSize,
			r.SKU,
			r.ProductName,
			r.Category,
			r.Vendor,
			strconv.Itoa(r.ParLevel),
			strconv.Itoa(r.OnHand),
			formatFloat(r.AvgWeeklySales, 1),
			formatFloat(r.WeeksOfSupply, 1),
			string(r.StockStatus),
			money(r.Cost),
			money(r.Retail),
			money(r.InventoryValueCost),
			money(r.InventoryValueRetail),
			strconv.Itoa(r.DaysSinceLastReceipt),
		}
	})
}

// WritePurchaseOrders exports the PO table. Fields that do not apply to the
// order's status come out as empty cells.
func WritePurchaseOrders(path string, rows []domain.PurchaseOrder) error {
	header := []string{
		"po_number", "vendor", "po_date", "expected_delivery", "actual_delivery",
		"status", "on_time", "total_units", "total_cost", "num_line_items",
		"lead_time_days", "delivery_variance_days",
	}

	return writeCSV(path, header, len(rows), func(i int) []string {
		r := rows[i]

		actual := ""
		if r.ActualDelivery != nil {
			actual = r.ActualDelivery.Format(dateLayout)
		}
		onTime := ""
		if r.OnTime != nil {
			onTime = strconv.FormatBool(*r.OnTime)
		}
		variance := ""
		if r.DeliveryVarianceDays != nil {
			variance = strconv.Itoa(*r.DeliveryVarianceDays)
		}

		return []string{
			r.PONumber,
			r.Vendor,
			r.PODate.Format(dateLayout),
			r.ExpectedDelivery.Format(dateLayout),
			actual,
			string(r.Status),
			onTime,
			strconv.Itoa(r.TotalUnits),
			money(r.TotalCost),
			strconv.Itoa(r.NumLineItems),
			strconv.Itoa(r.LeadTimeDays),
			variance,
		}
	})
}

// WriteProducts exports the product catalog with its derived margins.
func WriteProducts(path string, rows []catalog.Product) error {
	header := []string{
		"sku", "name", "category", "subcategory", "vendor",
		"cost", "retail", "size_run", "margin_pct", "margin_dollars",
	}

	return writeCSV(path, header, len(rows), func(i int) []string {
		p := rows[i]
		return []string{
			p.SKU,
			p.Name,
			p.Category,
			p.Subcategory,
			p.Vendor,
			money(p.Cost),
			money(p.Retail),
			strconv.FormatBool(p.SizeRun),
			formatFloat(p.MarginPct, 1),
			money(p.MarginDollars),
		}
	})
}

// WriteGyms exports the location table.
func WriteGyms(path string, rows []catalog.Gym) error {
	header := []string{"gym_id", "gym_name", "city", "state", "region", "size"}

	return writeCSV(path, header, len(rows), func(i int) []string {
		g := rows[i]
		return []string{g.ID, g.Name, g.City, g.State, g.Region, g.Size}
	})
}

// writeCSV creates path and streams header plus n records through the
// row callback.
func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
