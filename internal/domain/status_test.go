package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name   string
		onHand int
		weeks  float64
		want   StockStatus
	}{
		{"zero on hand wins regardless of supply", 0, 50, StockOutOfStock},
		{"under two weeks is critical", 3, 1.9, StockCriticalLow},
		{"exactly two weeks is low, not critical", 5, 2, StockLow},
		{"under four weeks is low", 5, 3.9, StockLow},
		{"exactly four weeks is in stock", 10, 4, StockInStock},
		{"mid-range is in stock", 10, 8, StockInStock},
		{"exactly twelve weeks is still in stock", 30, 12, StockInStock},
		{"over twelve weeks is overstock", 40, 12.1, StockOverstock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.onHand, tt.weeks))
		})
	}
}

func TestStockStatusHealthy(t *testing.T) {
	assert.True(t, StockInStock.Healthy())
	assert.True(t, StockOverstock.Healthy())
	assert.False(t, StockOutOfStock.Healthy())
	assert.False(t, StockCriticalLow.Healthy())
	assert.False(t, StockLow.Healthy())
}

func TestParsePOStatus(t *testing.T) {
	s, ok := ParsePOStatus("received")
	assert.True(t, ok)
	assert.Equal(t, POReceived, s)

	s, ok = ParsePOStatus(" In Transit ")
	assert.True(t, ok)
	assert.Equal(t, POInTransit, s)

	_, ok = ParsePOStatus("cancelled")
	assert.False(t, ok)
}
