package config

import (
	"stock-market-analyzer/pkg/config"
)

// Simulation holds the price-path generator parameters.
type Simulation struct {
	StartDate  string  `mapstructure:"start_date"`
	EndDate    string  `mapstructure:"end_date"`
	Drift      float64 `mapstructure:"drift"`
	Volatility float64 `mapstructure:"volatility"`
}

// Analytics holds derived-metrics configuration.
type Analytics struct {
	ShortWindow int    `mapstructure:"short_window"`
	LongWindow  int    `mapstructure:"long_window"`
	CacheTTL    string `mapstructure:"cache_ttl"`
	RefreshCron string `mapstructure:"refresh_cron"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	API        config.API      `mapstructure:"api"`
	Simulation Simulation      `mapstructure:"simulation"`
	Analytics  Analytics       `mapstructure:"analytics"`
}

// Load loads the analyzer configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
