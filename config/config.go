package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. PRESTASHOP_SHOP_API_KEY
const EnvPrefix = "PRESTASHOP"

// Load loads the configuration from file, with environment overrides
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".prestashop"))
		}

		// Check /etc
		v.AddConfigPath("/etc/prestashop/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Shop defaults
	v.SetDefault("shop.url", "")
	v.SetDefault("shop.api_key", "")
	v.SetDefault("shop.format", "json")
	v.SetDefault("shop.language", "")
	v.SetDefault("shop.debug", false)
	v.SetDefault("shop.timeout", "30s")
	v.SetDefault("shop.detect_version", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Shop.URL == "" {
		return fmt.Errorf("shop.url is required")
	}

	if cfg.Shop.APIKey == "" || cfg.Shop.APIKey == "your-api-key-here" {
		return fmt.Errorf("shop.api_key must be set to a valid API key")
	}

	validShopFormats := map[string]bool{
		"json": true,
		"xml":  true,
	}
	if !validShopFormats[strings.ToLower(cfg.Shop.Format)] {
		return fmt.Errorf("invalid shop.format: %s (must be 'json' or 'xml')", cfg.Shop.Format)
	}

	if cfg.Shop.Timeout < 0 {
		return fmt.Errorf("shop.timeout must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
