package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Spanner SpannerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type SpannerConfig struct {
	// Database is the fully qualified Spanner database path, e.g.
	// projects/p/instances/i/databases/d. For local dev point
	// SPANNER_EMULATOR_HOST at the emulator.
	Database string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/catalog")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Spanner: SpannerConfig{
			Database: viper.GetString("SPANNER_DATABASE"),
		},
	}
}
