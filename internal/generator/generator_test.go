package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbops/retailgen/internal/catalog"
)

func TestSameSeedReproducesIdenticalTables(t *testing.T) {
	cat := catalog.Default()

	a := New(cat, catalog.DefaultSeed)
	b := New(cat, catalog.DefaultSeed)

	assert.Equal(t, a.Sales(4), b.Sales(4))
	assert.Equal(t, a.Inventory(), b.Inventory())
	assert.Equal(t, a.PurchaseOrders(50), b.PurchaseOrders(50))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	cat := catalog.Default()

	a := New(cat, 1)
	b := New(cat, 2)

	assert.NotEqual(t, a.Sales(2), b.Sales(2))
}

func TestDefaultRunShape(t *testing.T) {
	cat := catalog.Default()
	g := New(cat, catalog.DefaultSeed)

	sales := g.Sales(catalog.DefaultMonths)
	inventory := g.Inventory()
	pos := g.PurchaseOrders(catalog.DefaultPurchaseOrders)

	require.NotEmpty(t, sales)
	assert.Len(t, inventory, len(cat.Gyms)*len(cat.Products))
	assert.Len(t, pos, catalog.DefaultPurchaseOrders)
}

func TestIntBetweenBounds(t *testing.T) {
	g := New(catalog.Default(), catalog.DefaultSeed)

	for i := 0; i < 1000; i++ {
		v := g.intBetween(3, 14)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 14)
	}
}

func TestPoissonNeverNegative(t *testing.T) {
	g := New(catalog.Default(), catalog.DefaultSeed)

	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, g.poisson(0.1), 0)
	}
}
