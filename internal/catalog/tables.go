// internal/catalog/tables.go
//
// Static data tables for the synthetic gym network. All of this is fabricated
// configuration, not real business data.
package catalog

var gymLocations = []Gym{
	// California
	{ID: "MOV-001", Name: "Movement Mountain View", City: "Mountain View", State: "CA", Region: "California", Size: SizeLarge},
	{ID: "MOV-002", Name: "Movement Belmont", City: "Belmont", State: "CA", Region: "California", Size: SizeMedium},
	{ID: "MOV-003", Name: "Movement Fountain Valley", City: "Fountain Valley", State: "CA", Region: "California", Size: SizeLarge},
	{ID: "MOV-004", Name: "Movement San Francisco", City: "San Francisco", State: "CA", Region: "California", Size: SizeLarge},
	{ID: "MOV-005", Name: "Movement Santa Clara", City: "Santa Clara", State: "CA", Region: "California", Size: SizeMedium},
	{ID: "MOV-006", Name: "Movement Sunnyvale", City: "Sunnyvale", State: "CA", Region: "California", Size: SizeMedium},
	// Oregon
	{ID: "MOV-007", Name: "Movement Portland", City: "Portland", State: "OR", Region: "Pacific NW", Size: SizeLarge},
	// Colorado
	{ID: "MOV-008", Name: "Movement Baker", City: "Denver", State: "CO", Region: "Colorado", Size: SizeLarge},
	{ID: "MOV-009", Name: "Movement Boulder", City: "Boulder", State: "CO", Region: "Colorado", Size: SizeLarge},
	{ID: "MOV-010", Name: "Movement Centennial", City: "Centennial", State: "CO", Region: "Colorado", Size: SizeMedium},
	{ID: "MOV-011", Name: "Movement Englewood", City: "Englewood", State: "CO", Region: "Colorado", Size: SizeMedium},
	{ID: "MOV-012", Name: "Movement Golden", City: "Golden", State: "CO", Region: "Colorado", Size: SizeMedium},
	{ID: "MOV-013", Name: "Movement RiNo", City: "Denver", State: "CO", Region: "Colorado", Size: SizeLarge},
	// Illinois
	{ID: "MOV-014", Name: "Movement Lincoln Park", City: "Chicago", State: "IL", Region: "Midwest", Size: SizeLarge},
	{ID: "MOV-015", Name: "Movement Wrigleyville", City: "Chicago", State: "IL", Region: "Midwest", Size: SizeLarge},
	// Texas
	{ID: "MOV-016", Name: "Movement Denton", City: "Denton", State: "TX", Region: "Texas", Size: SizeMedium},
	{ID: "MOV-017", Name: "Movement Design District", City: "Dallas", State: "TX", Region: "Texas", Size: SizeLarge},
	{ID: "MOV-018", Name: "Movement Fort Worth", City: "Fort Worth", State: "TX", Region: "Texas", Size: SizeLarge},
	{ID: "MOV-019", Name: "Movement Grapevine", City: "Grapevine", State: "TX", Region: "Texas", Size: SizeMedium},
	{ID: "MOV-020", Name: "Movement The Hill", City: "Dallas", State: "TX", Region: "Texas", Size: SizeMedium},
	{ID: "MOV-021", Name: "Movement Plano", City: "Plano", State: "TX", Region: "Texas", Size: SizeLarge},
	// Maryland
	{ID: "MOV-022", Name: "Movement Columbia", City: "Columbia", State: "MD", Region: "Mid-Atlantic", Size: SizeMedium},
	{ID: "MOV-023", Name: "Movement Hampden", City: "Baltimore", State: "MD", Region: "Mid-Atlantic", Size: SizeLarge},
	{ID: "MOV-024", Name: "Movement Rockville", City: "Rockville", State: "MD", Region: "Mid-Atlantic", Size: SizeMedium},
	{ID: "MOV-025", Name: "Movement Timonium", City: "Timonium", State: "MD", Region: "Mid-Atlantic", Size: SizeMedium},
	// New York
	{ID: "MOV-026", Name: "Movement Gowanus", City: "Brooklyn", State: "NY", Region: "Northeast", Size: SizeLarge},
	{ID: "MOV-027", Name: "Movement Harlem", City: "New York", State: "NY", Region: "Northeast", Size: SizeLarge},
	{ID: "MOV-028", Name: "Movement LIC", City: "Queens", State: "NY", Region: "Northeast", Size: SizeMedium},
	{ID: "MOV-029", Name: "Movement Valhalla", City: "Valhalla", State: "NY", Region: "Northeast", Size: SizeMedium},
	// Pennsylvania
	{ID: "MOV-030", Name: "Movement Callowhill", City: "Philadelphia", State: "PA", Region: "Northeast", Size: SizeLarge},
	{ID: "MOV-031", Name: "Movement Fishtown", City: "Philadelphia", State: "PA", Region: "Northeast", Size: SizeMedium},
	// Virginia
	{ID: "MOV-032", Name: "Movement Crystal City", City: "Arlington", State: "VA", Region: "Mid-Atlantic", Size: SizeLarge},
	{ID: "MOV-033", Name: "Movement Fairfax", City: "Fairfax", State: "VA", Region: "Mid-Atlantic", Size: SizeMedium},
}

var vendors = []Vendor{
	{Name: "La Sportiva", LeadTimeDays: 21, MinOrder: 500, Reliability: 0.92},
	{Name: "Petzl", LeadTimeDays: 18, MinOrder: 400, Reliability: 0.95},
	{Name: "Black Diamond", LeadTimeDays: 14, MinOrder: 300, Reliability: 0.93},
	{Name: "Evolv", LeadTimeDays: 21, MinOrder: 400, Reliability: 0.88},
	{Name: "Scarpa", LeadTimeDays: 25, MinOrder: 600, Reliability: 0.90},
	{Name: "Metolius", LeadTimeDays: 10, MinOrder: 200, Reliability: 0.94},
	{Name: "FrictionLabs", LeadTimeDays: 7, MinOrder: 150, Reliability: 0.97},
	{Name: "Beal", LeadTimeDays: 20, MinOrder: 350, Reliability: 0.91},
	{Name: "Mammut", LeadTimeDays: 22, MinOrder: 500, Reliability: 0.89},
	{Name: "prAna", LeadTimeDays: 14, MinOrder: 250, Reliability: 0.93},
}

var products = []Product{
	// Climbing Shoes - the bread and butter
	{SKU: "SH-001", Name: "La Sportiva Tarantula", Category: "Climbing Shoes", Subcategory: "Beginner", Vendor: "La Sportiva", Cost: 45.00, Retail: 89.95, SizeRun: true},
	{SKU: "SH-002", Name: "La Sportiva Finale", Category: "Climbing Shoes", Subcategory: "Beginner", Vendor: "La Sportiva", Cost: 50.00, Retail: 99.95, SizeRun: true},
	{SKU: "SH-003", Name: "La Sportiva Solution", Category: "Climbing Shoes", Subcategory: "Advanced", Vendor: "La Sportiva", Cost: 95.00, Retail: 189.95, SizeRun: true},
	{SKU: "SH-004", Name: "Evolv Defy", Category: "Climbing Shoes", Subcategory: "Beginner", Vendor: "Evolv", Cost: 40.00, Retail: 79.95, SizeRun: true},
	{SKU: "SH-005", Name: "Evolv Shaman", Category: "Climbing Shoes", Subcategory: "Advanced", Vendor: "Evolv", Cost: 85.00, Retail: 169.95, SizeRun: true},
	{SKU: "SH-006", Name: "Scarpa Instinct VS", Category: "Climbing Shoes", Subcategory: "Advanced", Vendor: "Scarpa", Cost: 90.00, Retail: 179.95, SizeRun: true},
	{SKU: "SH-007", Name: "Black Diamond Momentum", Category: "Climbing Shoes", Subcategory: "Beginner", Vendor: "Black Diamond", Cost: 42.00, Retail: 84.95, SizeRun: true},
	// Harnesses
	{SKU: "HR-001", Name: "Petzl Corax", Category: "Harnesses", Subcategory: "All-Around", Vendor: "Petzl", Cost: 32.00, Retail: 64.95},
	{SKU: "HR-002", Name: "Black Diamond Momentum Harness", Category: "Harnesses", Subcategory: "All-Around", Vendor: "Black Diamond", Cost: 30.00, Retail: 59.95},
	{SKU: "HR-003", Name: "Petzl Sitta", Category: "Harnesses", Subcategory: "Performance", Vendor: "Petzl", Cost: 70.00, Retail: 139.95},
	{SKU: "HR-004", Name: "Mammut Ophir 4 Slide", Category: "Harnesses", Subcategory: "All-Around", Vendor: "Mammut", Cost: 35.00, Retail: 69.95},
	// Chalk - high volume, low margin, always needs restocking
	{SKU: "CH-001", Name: "FrictionLabs Unicorn Dust", Category: "Chalk", Subcategory: "Loose Chalk", Vendor: "FrictionLabs", Cost: 10.00, Retail: 21.95},
	{SKU: "CH-002", Name: "FrictionLabs Gorilla Grip", Category: "Chalk", Subcategory: "Chunky Chalk", Vendor: "FrictionLabs", Cost: 12.00, Retail: 24.95},
	{SKU: "CH-003", Name: "Metolius Super Chalk", Category: "Chalk", Subcategory: "Loose Chalk", Vendor: "Metolius", Cost: 4.00, Retail: 9.95},
	{SKU: "CH-004", Name: "Black Diamond White Gold", Category: "Chalk", Subcategory: "Loose Chalk", Vendor: "Black Diamond", Cost: 5.00, Retail: 11.95},
	// Belay Devices
	{SKU: "BD-001", Name: "Petzl GriGri+", Category: "Belay Devices", Subcategory: "Assisted Braking", Vendor: "Petzl", Cost: 55.00, Retail: 109.95},
	{SKU: "BD-002", Name: "Black Diamond ATC-XP", Category: "Belay Devices", Subcategory: "Tubular", Vendor: "Black Diamond", Cost: 12.00, Retail: 24.95},
	{SKU: "BD-003", Name: "Mammut Smart 2.0", Category: "Belay Devices", Subcategory: "Assisted Braking", Vendor: "Mammut", Cost: 15.00, Retail: 29.95},
	// Carabiners
	{SKU: "CB-001", Name: "Petzl Attache", Category: "Carabiners", Subcategory: "Locking", Vendor: "Petzl", Cost: 8.00, Retail: 16.95},
	{SKU: "CB-002", Name: "Black Diamond RockLock", Category: "Carabiners", Subcategory: "Locking", Vendor: "Black Diamond", Cost: 7.00, Retail: 14.95},
	{SKU: "CB-003", Name: "Petzl Djinn Quickdraw", Category: "Carabiners", Subcategory: "Quickdraw", Vendor: "Petzl", Cost: 12.00, Retail: 24.95},
	// Chalk Bags
	{SKU: "CB-101", Name: "Metolius Competition Chalk Bag", Category: "Chalk Bags", Subcategory: "Standard", Vendor: "Metolius", Cost: 8.00, Retail: 17.95},
	{SKU: "CB-102", Name: "Mammut Gym Print Chalk Bag", Category: "Chalk Bags", Subcategory: "Standard", Vendor: "Mammut", Cost: 10.00, Retail: 21.95},
	{SKU: "CB-103", Name: "Black Diamond Mojo Chalk Bag", Category: "Chalk Bags", Subcategory: "Standard", Vendor: "Black Diamond", Cost: 9.00, Retail: 19.95},
	// Ropes - high ticket items
	{SKU: "RP-001", Name: "Beal Stinger III 9.4mm", Category: "Ropes", Subcategory: "Single Rope", Vendor: "Beal", Cost: 95.00, Retail: 189.95},
	{SKU: "RP-002", Name: "Mammut Crag Classic 9.8mm", Category: "Ropes", Subcategory: "Single Rope", Vendor: "Mammut", Cost: 80.00, Retail: 159.95},
	// Apparel
	{SKU: "AP-001", Name: "prAna Stretch Zion Pant", Category: "Apparel", Subcategory: "Pants", Vendor: "prAna", Cost: 40.00, Retail: 85.00},
	{SKU: "AP-002", Name: "prAna Bridger Jean", Category: "Apparel", Subcategory: "Pants", Vendor: "prAna", Cost: 35.00, Retail: 75.00},
	{SKU: "AP-003", Name: "Movement Logo Tee", Category: "Apparel", Subcategory: "Tops", Vendor: "prAna", Cost: 8.00, Retail: 25.00},
	// Training gear
	{SKU: "TR-001", Name: "Metolius Simulator 3D", Category: "Training", Subcategory: "Hangboard", Vendor: "Metolius", Cost: 20.00, Retail: 44.95},
	{SKU: "TR-002", Name: "Metolius Rock Rings", Category: "Training", Subcategory: "Grip Trainer", Vendor: "Metolius", Cost: 15.00, Retail: 34.95},
}
