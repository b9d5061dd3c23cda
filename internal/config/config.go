package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	// SeedFile points at a JSON fixture produced by cmd/seed. When empty
	// or missing the server generates its own seed dataset at startup.
	SeedFile string
	SeedSize SeedSizeConfig
}

type SeedSizeConfig struct {
	PurchaseRequests int
	PurchaseOrders   int
	Vendors          int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_SEED_FILE", "")
		viper.SetDefault("APP_SEED_PRS", 7)
		viper.SetDefault("APP_SEED_POS", 8)
		viper.SetDefault("APP_SEED_VENDORS", 6)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				SeedFile: viper.GetString("APP_SEED_FILE"),
				SeedSize: SeedSizeConfig{
					PurchaseRequests: viper.GetInt("APP_SEED_PRS"),
					PurchaseOrders:   viper.GetInt("APP_SEED_POS"),
					Vendors:          viper.GetInt("APP_SEED_VENDORS"),
				},
			},
		}
	})

	return instance
}
