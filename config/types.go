package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Shop    ShopConfig    `mapstructure:"shop"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ShopConfig holds PrestaShop webservice connection details
type ShopConfig struct {
	URL           string        `mapstructure:"url"`
	APIKey        string        `mapstructure:"api_key"`
	Format        string        `mapstructure:"format"`
	Language      string        `mapstructure:"language"`
	Debug         bool          `mapstructure:"debug"`
	Timeout       time.Duration `mapstructure:"timeout"`
	DetectVersion bool          `mapstructure:"detect_version"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
