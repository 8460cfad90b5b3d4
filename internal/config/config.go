package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from an app.env
// file and overridable through environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	// DBSource selects the storage backend: a postgres:// URL uses pgx,
	// anything else is treated as a SQLite file path.
	DBSource string `mapstructure:"DB_SOURCE"`

	BusAPIKey     string        `mapstructure:"BUSINFO_API_KEY"`
	BusAPIBaseURL string        `mapstructure:"BUSINFO_API_BASE_URL"`
	ClientTimeout time.Duration `mapstructure:"CLIENT_TIMEOUT"`

	// Grid resolution used to tile a bounding box into point-radius
	// provider queries.
	GridRows int `mapstructure:"GRID_ROWS"`
	GridCols int `mapstructure:"GRID_COLS"`
}

// LoadConfig reads configuration from the given directory, falling back to
// defaults when no config file or environment override is present.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	viper.SetDefault("DB_SOURCE", "bus_searcher.db")
	viper.SetDefault("BUSINFO_API_KEY", "")
	viper.SetDefault("BUSINFO_API_BASE_URL", "http://openapi.gbis.go.kr/ws/rest")
	viper.SetDefault("CLIENT_TIMEOUT", 30*time.Second)
	viper.SetDefault("GRID_ROWS", 2)
	viper.SetDefault("GRID_COLS", 2)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}
