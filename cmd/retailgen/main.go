package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/climbops/retailgen/internal/catalog"
	"github.com/climbops/retailgen/internal/config"
	"github.com/climbops/retailgen/internal/domain"
	"github.com/climbops/retailgen/internal/export"
	"github.com/climbops/retailgen/internal/generator"
	"github.com/climbops/retailgen/internal/report"
	"github.com/climbops/retailgen/pkg/logger"
)

func commonFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "months",
			Usage:   "Months of sales history to generate",
			Value:   cfg.Generator.Months,
			EnvVars: []string{"GEN_MONTHS"},
		},
		&cli.IntFlag{
			Name:    "pos",
			Usage:   "Number of purchase orders to generate",
			Value:   cfg.Generator.PurchaseOrders,
			EnvVars: []string{"GEN_PURCHASE_ORDERS"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "Random seed (same seed reproduces the same tables)",
			Value:   cfg.Generator.Seed,
			EnvVars: []string{"GEN_SEED"},
		},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := config.Load()
	logger.SetLevel(cfg.Log.Level)

	app := &cli.App{
		Name:  "retailgen",
		Usage: "Generate the synthetic retail dataset for the gym network",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate all tables, export them to CSV and print the summary",
				Flags: append(commonFlags(cfg),
					&cli.StringFlag{
						Name:    "out-dir",
						Usage:   "Directory for the exported CSV files",
						Value:   cfg.App.DataDir,
						EnvVars: []string{"APP_DATA_DIR"},
					},
					&cli.BoolFlag{
						Name:  "no-summary",
						Usage: "Skip the key-findings summary",
					},
				),
				Action: runGenerate,
			},
			{
				Name:   "summary",
				Usage:  "Generate the tables in memory and print the summary only",
				Flags:  commonFlags(cfg),
				Action: runSummary,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("retailgen failed")
	}
}

func runGenerate(c *cli.Context) error {
	sales, inventory, pos, cat := generateTables(c)

	outDir := c.String("out-dir")
	if err := export.WriteAll(outDir, sales, inventory, pos, cat); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Log.Info().Str("dir", outDir).Msg("raw data exported")

	if !c.Bool("no-summary") {
		report.WriteSummary(os.Stdout, sales, inventory, pos)
	}

	return nil
}

func runSummary(c *cli.Context) error {
	sales, inventory, pos, _ := generateTables(c)
	report.WriteSummary(os.Stdout, sales, inventory, pos)

	return nil
}

func generateTables(c *cli.Context) (
	sales []domain.SalesTransaction,
	inventory []domain.InventoryRecord,
	pos []domain.PurchaseOrder,
	cat *catalog.Catalog,
) {
	months := c.Int("months")
	numPOs := c.Int("pos")
	seed := c.Uint64("seed")

	cat = catalog.Default()
	gen := generator.New(cat, seed)

	sales = gen.Sales(months)
	inventory = gen.Inventory()
	pos = gen.PurchaseOrders(numPOs)

	logger.Log.Info().
		Int("sales", len(sales)).
		Int("inventory", len(inventory)).
		Int("purchase_orders", len(pos)).
		Int("skus", len(cat.Products)).
		Int("gyms", len(cat.Gyms)).
		Uint64("seed", seed).
		Msg("synthetic data generated")

	return sales, inventory, pos, cat
}
