// Package config reads storefront settings from an optional YAML file and
// the environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"Storefront/internal/cart"
	"Storefront/internal/money"
	"Storefront/internal/storage"
)

var ErrWeakSecret = errors.New("SESSION_SECRET must be at least 32 chars")

const minSecretLen = 32

type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	Storage Storage `yaml:"storage"`
	Catalog Catalog `yaml:"catalog"`

	CartKey       string         `yaml:"cart_key"`
	SessionSecret string         `yaml:"session_secret"`
	MetricsToken  string         `yaml:"metrics_token"`
	Currency      money.Currency `yaml:"currency"`
	ShippingFee   int64          `yaml:"shipping_fee"`

	CheckoutLimitPerMin int `yaml:"checkout_limit_per_min"`
}

type Storage struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Catalog struct {
	File string `yaml:"file"`
	DSN  string `yaml:"dsn"`
}

func Defaults() Config {
	return Config{
		Port:                "8080",
		LogLevel:            "info",
		Storage:             Storage{Driver: storage.DriverSQLite, DSN: "storefront.db"},
		CartKey:             cart.DefaultKey,
		Currency:            money.BDT,
		ShippingFee:         cart.DefaultShippingFee,
		CheckoutLimitPerMin: 10,
	}
}

// Load applies, in order: defaults, the YAML file named by CONFIG_FILE, and
// environment variables.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.DSN, "STORAGE_DSN")
	setString(&c.Catalog.File, "CATALOG_FILE")
	setString(&c.Catalog.DSN, "CATALOG_DSN")
	setString(&c.CartKey, "CART_KEY")
	setString(&c.SessionSecret, "SESSION_SECRET")
	setString(&c.MetricsToken, "METRICS_TOKEN")
	setString(&c.Currency.Code, "CURRENCY_CODE")
	setString(&c.Currency.Symbol, "CURRENCY_SYMBOL")

	if err := setInt64(&c.ShippingFee, "SHIPPING_FEE"); err != nil {
		return err
	}
	limit := int64(c.CheckoutLimitPerMin)
	if err := setInt64(&limit, "CHECKOUT_LIMIT_PER_MIN"); err != nil {
		return err
	}
	c.CheckoutLimitPerMin = int(limit)
	return nil
}

// RequireSecret fails unless a signing secret of sufficient length is set.
func (c Config) RequireSecret() error {
	if len(c.SessionSecret) < minSecretLen {
		return ErrWeakSecret
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt64(dst *int64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
