package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Printer  PrinterConfig  `yaml:"printer"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// StoreConfig selects the cart persistence backend: sqlite, postgres, redis
// or memory. DSN is a file path, a postgres DSN or a redis:// URL.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type CheckoutConfig struct {
	ExpiryMaxYear int `yaml:"expiry_max_year"`
}

// PrinterConfig sends receipts to stdout unless SpoolDir is set.
type PrinterConfig struct {
	SpoolDir string `yaml:"spool_dir"`
}

type LogConfig struct {
	Service string `yaml:"service"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Store:    StoreConfig{Driver: "sqlite", DSN: "pos.db"},
		Checkout: CheckoutConfig{ExpiryMaxYear: 99},
		Log:      LogConfig{Service: "pos"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Server.Port = getEnvOrDefault("PORT", cfg.Server.Port)
	cfg.Store.Driver = getEnvOrDefault("POS_STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.DSN = getEnvOrDefault("POS_STORE_DSN", cfg.Store.DSN)
	cfg.Printer.SpoolDir = getEnvOrDefault("POS_PRINTER_SPOOL_DIR", cfg.Printer.SpoolDir)
	cfg.Log.Service = getEnvOrDefault("POS_LOG_SERVICE", cfg.Log.Service)

	if v, ok := os.LookupEnv("POS_EXPIRY_MAX_YEAR"); ok {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid POS_EXPIRY_MAX_YEAR: %w", err)
		}
		cfg.Checkout.ExpiryMaxYear = year
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Driver != "memory" && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for driver %s", c.Store.Driver)
	}
	if c.Checkout.ExpiryMaxYear < 0 || c.Checkout.ExpiryMaxYear > 99 {
		return fmt.Errorf("checkout.expiry_max_year must be between 0 and 99, got %d", c.Checkout.ExpiryMaxYear)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
