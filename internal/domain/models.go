// internal/domain/models.go
package domain

import "time"

// SalesTransaction represents one unit sold at one gym. Gym and product
// attributes are denormalized onto the row so downstream consumers never need
// a join.
type SalesTransaction struct {
	SaleDate    time.Time `json:"sale_date" db:"sale_date"`
	GymID       string    `json:"gym_id" db:"gym_id"`
	GymName     string    `json:"gym_name" db:"gym_name"`
	Region      string    `json:"region" db:"region"`
	SKU         string    `json:"sku" db:"sku"`
	ProductName string    `json:"product_name" db:"product_name"`
	Category    string    `json:"category" db:"category"`
	Vendor      string    `json:"vendor" db:"vendor"`
	UnitsSold   int       `json:"units_sold" db:"units_sold"`
	RetailPrice float64   `json:"retail_price" db:"retail_price"`
	SalePrice   float64   `json:"sale_price" db:"sale_price"`
	Cost        float64   `json:"cost" db:"cost"`
	DiscountPct int       `json:"discount_pct" db:"discount_pct"`
	GrossMargin float64   `json:"gross_margin" db:"gross_margin"`
	MarginPct   float64   `json:"margin_pct" db:"margin_pct"`
}

// InventoryRecord is a point-in-time snapshot for one SKU at one gym.
type InventoryRecord struct {
	GymID                string      `json:"gym_id" db:"gym_id"`
	GymName              string      `json:"gym_name" db:"gym_name"`
	Region               string      `json:"region" db:"region"`
	GymSize              string      `json:"gym_size" db:"gym_size"`
	SKU                  string      `json:"sku" db:"sku"`
	ProductName          string      `json:"product_name" db:"product_name"`
	Category             string      `json:"category" db:"category"`
	Vendor               string      `json:"vendor" db:"vendor"`
	ParLevel             int         `json:"par_level" db:"par_level"`
	OnHand               int         `json:"on_hand" db:"on_hand"`
	AvgWeeklySales       float64     `json:"avg_weekly_sales" db:"avg_weekly_sales"`
	WeeksOfSupply        float64     `json:"weeks_of_supply" db:"weeks_of_supply"`
	StockStatus          StockStatus `json:"stock_status" db:"stock_status"`
	Cost                 float64     `json:"cost" db:"cost"`
	Retail               float64     `json:"retail" db:"retail"`
	InventoryValueCost   float64     `json:"inventory_value_cost" db:"inventory_value_cost"`
	InventoryValueRetail float64     `json:"inventory_value_retail" db:"inventory_value_retail"`
	DaysSinceLastReceipt int         `json:"days_since_last_receipt" db:"days_since_last_receipt"`
}

// PurchaseOrder is one order placed against a vendor. ActualDelivery, OnTime
// and DeliveryVarianceDays are only set once the order is Received; nil means
// not applicable, never "zero".
type PurchaseOrder struct {
	PONumber             string     `json:"po_number" db:"po_number"`
	Vendor               string     `json:"vendor" db:"vendor"`
	PODate               time.Time  `json:"po_date" db:"po_date"`
	ExpectedDelivery     time.Time  `json:"expected_delivery" db:"expected_delivery"`
	ActualDelivery       *time.Time `json:"actual_delivery,omitempty" db:"actual_delivery"`
	Status               POStatus   `json:"status" db:"status"`
	OnTime               *bool      `json:"on_time,omitempty" db:"on_time"`
	TotalUnits           int        `json:"total_units" db:"total_units"`
	TotalCost            float64    `json:"total_cost" db:"total_cost"`
	NumLineItems         int        `json:"num_line_items" db:"num_line_items"`
	LeadTimeDays         int        `json:"lead_time_days" db:"lead_time_days"`
	DeliveryVarianceDays *int       `json:"delivery_variance_days,omitempty" db:"delivery_variance_days"`
}
