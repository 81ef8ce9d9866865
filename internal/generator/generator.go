// internal/generator/generator.go
//
// Synthetic data generation for the retail analysis pipeline. All data is
// fabricated - no real business data is involved. Generation is single
// threaded on purpose: every random draw comes from one seeded stream, so a
// fixed seed and fixed parameters reproduce the exact same tables.
package generator

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/climbops/retailgen/internal/catalog"
)

// Generator produces the sales, inventory and purchase-order tables from the
// static catalog. Create one per run; the three table methods consume a
// shared random stream in a fixed order.
type Generator struct {
	cat *catalog.Catalog
	rng *rand.Rand
}

// New returns a Generator seeded once for the whole run.
func New(cat *catalog.Catalog, seed uint64) *Generator {
	return &Generator{
		cat: cat,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// poisson draws a unit count with the given mean.
func (g *Generator) poisson(mean float64) int {
	n := int(distuv.Poisson{Lambda: mean, Src: g.rng}.Rand())
	if n < 0 {
		n = 0
	}
	return n
}

// normal draws from N(mu, sigma).
func (g *Generator) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.rng}.Rand()
}

// intBetween draws uniformly from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// round2 rounds a money amount to cents.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
