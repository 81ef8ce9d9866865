package domain

import "strings"

// StockStatus classifies the health of one SKU-location.
type StockStatus string

const (
	StockOutOfStock  StockStatus = "Out of Stock"
	StockCriticalLow StockStatus = "Critical Low"
	StockLow         StockStatus = "Low"
	StockInStock     StockStatus = "In Stock"
	StockOverstock   StockStatus = "Overstock"
)

// Healthy reports whether the status counts toward the in-stock rate.
func (s StockStatus) Healthy() bool {
	return s == StockInStock || s == StockOverstock
}

// ClassifyStock maps on-hand quantity and weeks of supply to a stock status.
// Boundaries are strict: exactly 2, 4 or 12 weeks of supply falls into the
// coarser bucket.
func ClassifyStock(onHand int, weeksOfSupply float64) StockStatus {
	switch {
	case onHand == 0:
		return StockOutOfStock
	case weeksOfSupply < 2:
		return StockCriticalLow
	case weeksOfSupply < 4:
		return StockLow
	case weeksOfSupply > 12:
		return StockOverstock
	default:
		return StockInStock
	}
}

// POStatus classifies a purchase order against the observation horizon.
type POStatus string

const (
	POReceived  POStatus = "Received"
	POInTransit POStatus = "In Transit"
	POOpen      POStatus = "Open"
)

var poStatuses = map[string]POStatus{
	"received":   POReceived,
	"in transit": POInTransit,
	"open":       POOpen,
}

// ParsePOStatus returns the status for a given label (case-insensitive).
func ParsePOStatus(label string) (POStatus, bool) {
	s, ok := poStatuses[strings.ToLower(strings.TrimSpace(label))]

	return s, ok
}
