// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Generator GeneratorConfig
	Log       LogConfig
}

type AppConfig struct {
	DataDir string
}

type GeneratorConfig struct {
	Seed           uint64
	Months         int
	PurchaseOrders int
}

type LogConfig struct {
	Level string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("APP_DATA_DIR", "./output/data")
		viper.SetDefault("GEN_SEED", 42)
		viper.SetDefault("GEN_MONTHS", 12)
		viper.SetDefault("GEN_PURCHASE_ORDERS", 120)
		viper.SetDefault("LOG_LEVEL", "info")

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure the output directory exists
		ensureDir(viper.GetString("APP_DATA_DIR"))

		instance = &Config{
			App: AppConfig{
				DataDir: viper.GetString("APP_DATA_DIR"),
			},
			Generator: GeneratorConfig{
				Seed:           viper.GetUint64("GEN_SEED"),
				Months:         viper.GetInt("GEN_MONTHS"),
				PurchaseOrders: viper.GetInt("GEN_PURCHASE_ORDERS"),
			},
			Log: LogConfig{
				Level: viper.GetString("LOG_LEVEL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
