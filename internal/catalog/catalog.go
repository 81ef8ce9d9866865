// internal/catalog/catalog.go
package catalog

// Gym represents one retail location in the gym network.
type Gym struct {
	ID     string `json:"gym_id" db:"gym_id"`
	Name   string `json:"gym_name" db:"gym_name"`
	City   string `json:"city" db:"city"`
	State  string `json:"state" db:"state"`
	Region string `json:"region" db:"region"`
	Size   string `json:"size" db:"size"`
}

// Vendor represents a gear supplier with its lead time and delivery reliability.
type Vendor struct {
	Name         string  `json:"vendor" db:"vendor"`
	LeadTimeDays int     `json:"lead_time_days" db:"lead_time_days"`
	MinOrder     int     `json:"min_order" db:"min_order"`
	Reliability  float64 `json:"reliability" db:"reliability"`
}

// Product represents one SKU in the catalog. MarginPct and MarginDollars are
// derived from cost and retail when the catalog is built.
type Product struct {
	SKU           string  `json:"sku" db:"sku"`
	Name          string  `json:"name" db:"name"`
	Category      string  `json:"category" db:"category"`
	Subcategory   string  `json:"subcategory" db:"subcategory"`
	Vendor        string  `json:"vendor" db:"vendor"`
	Cost          float64 `json:"cost" db:"cost"`
	Retail        float64 `json:"retail" db:"retail"`
	SizeRun       bool    `json:"size_run" db:"size_run"`
	MarginPct     float64 `json:"margin_pct" db:"margin_pct"`
	MarginDollars float64 `json:"margin_dollars" db:"margin_dollars"`
}

// Catalog bundles the static configuration tables the generators run against.
// It is read-only after Default returns it.
type Catalog struct {
	Gyms     []Gym
	Vendors  []Vendor
	Products []Product

	byVendor map[string][]Product
}

// Default builds the catalog from the hardcoded tables.
func Default() *Catalog {
	return New(gymLocations, vendors, products)
}

// New builds a catalog from explicit tables, computing the derived product
// margins and the per-vendor index. The input slices are not mutated.
func New(gyms []Gym, vnds []Vendor, prods []Product) *Catalog {
	c := &Catalog{
		Gyms:     gyms,
		Vendors:  vnds,
		Products: make([]Product, len(prods)),
		byVendor: make(map[string][]Product, len(vnds)),
	}

	copy(c.Products, prods)
	for i := range c.Products {
		p := &c.Products[i]
		p.MarginPct = roundTo((p.Retail-p.Cost)/p.Retail*100, 1)
		p.MarginDollars = roundTo(p.Retail-p.Cost, 2)
		c.byVendor[p.Vendor] = append(c.byVendor[p.Vendor], *p)
	}

	return c
}

// ProductsByVendor returns the products supplied by the named vendor.
func (c *Catalog) ProductsByVendor(vendor string) []Product {
	return c.byVendor[vendor]
}

// VendorByName looks up a vendor by display name.
func (c *Catalog) VendorByName(name string) (Vendor, bool) {
	for _, v := range c.Vendors {
		if v.Name == name {
			return v, true
		}
	}
	return Vendor{}, false
}

// Categories returns the distinct product categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range c.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}
