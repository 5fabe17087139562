package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"wallet_intel/internal/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfigPath      = "CONFIG_PATH"
	EnvCoinGeckoAPIKey = "COINGECKO_API_KEY"
	EnvServerPort      = "SERVER_PORT"

	DefaultConfigPath = "config/config.yml"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Hiro       UpstreamAPI      `yaml:"hiro"`
	Tenero     UpstreamAPI      `yaml:"tenero"`
	CoinGecko  CoinGeckoConfig  `yaml:"coinGecko"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
	PriceCache PriceCacheConfig `yaml:"priceCache"`
	Payment    PaymentConfig    `yaml:"payment"`
	Tables     TablesConfig     `yaml:"tables"`
	Wallets    WalletsConfig    `yaml:"wallets"`
}

// ServerConfig holds the server-specific configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// UpstreamAPI is the address of a REST data source.
type UpstreamAPI struct {
	BaseURL string `yaml:"baseURL"`
}

// CoinGeckoConfig holds the configuration for the CoinGecko client.
type CoinGeckoConfig struct {
	BaseURL string `yaml:"baseURL"`
	ApiKey  string `yaml:"apiKey"`
}

// UpstreamConfig applies to every upstream client.
type UpstreamConfig struct {
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	RateLimit            float64 `yaml:"rateLimit"` // requests per second per upstream, 0 disables limiting
	Burst                int     `yaml:"burst"`
	MaxConcurrentReports int     `yaml:"maxConcurrentReports"`
}

// PriceCacheConfig configures the STX price cache.
type PriceCacheConfig struct {
	TTLMinutes    int     `yaml:"ttlMinutes"`
	FallbackPrice float64 `yaml:"fallbackPrice"`
}

// TokenContractConfig identifies the settlement token contract.
type TokenContractConfig struct {
	Address string `yaml:"address"`
	Name    string `yaml:"name"`
}

// PaymentConfig configures the payment gate in front of the report routes.
type PaymentConfig struct {
	Enabled       bool                `yaml:"enabled"`
	Mode          string              `yaml:"mode"` // "settlement-asset" or "contract"
	Network       string              `yaml:"network"`
	PayTo         string              `yaml:"payTo"`
	Contract      string              `yaml:"contract"`
	TokenType     string              `yaml:"tokenType"`
	TokenContract TokenContractConfig `yaml:"tokenContract"`
	FullPrice     int64               `yaml:"fullPrice"`
	QuickPrice    int64               `yaml:"quickPrice"`
}

// TablesConfig points to an optional classification tables override.
type TablesConfig struct {
	File string `yaml:"file"`
}

// WalletsConfig points to the address list used by batch analysis.
type WalletsConfig struct {
	File string `yaml:"file"`
}

// RequestTimeout returns the per-request upstream timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Upstream.RequestTimeoutMillis) * time.Millisecond
}

// PriceTTL returns how long a fetched STX price stays fresh.
func (c *Config) PriceTTL() time.Duration {
	return time.Duration(c.PriceCache.TTLMinutes) * time.Minute
}

// LoadConfig loads configuration from a YAML file. A .env file in the working
// directory is loaded first when present; environment values win over the file.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Failed to load .env file: %v", err)
	}

	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Infof("Configuration loaded successfully from %s", path)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if key := utils.GetEnv(EnvCoinGeckoAPIKey, ""); key != "" {
		cfg.CoinGecko.ApiKey = key
		logrus.Infof("CoinGecko.ApiKey taken from %s", EnvCoinGeckoAPIKey)
	}
	if port := utils.GetEnv(EnvServerPort, ""); port != "" {
		if port[0] != ':' {
			port = ":" + port
		}
		cfg.Server.Port = port
		logrus.Infof("Server.Port taken from %s: %s", EnvServerPort, port)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
		logrus.Infof("Server.ReadTimeout not set, defaulting to %d seconds", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60
		logrus.Infof("Server.WriteTimeout not set, defaulting to %d seconds", cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 120
		logrus.Infof("Server.IdleTimeout not set, defaulting to %d seconds", cfg.Server.IdleTimeout)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
		logrus.Infof("Logging.Level not set, defaulting to %s", cfg.Logging.Level)
	}

	if cfg.Hiro.BaseURL == "" {
		cfg.Hiro.BaseURL = "https://api.hiro.so"
		logrus.Infof("Hiro.BaseURL not set, defaulting to %s", cfg.Hiro.BaseURL)
	}
	if cfg.Tenero.BaseURL == "" {
		cfg.Tenero.BaseURL = "https://api.tenero.io"
		logrus.Infof("Tenero.BaseURL not set, defaulting to %s", cfg.Tenero.BaseURL)
	}
	if cfg.CoinGecko.BaseURL == "" {
		cfg.CoinGecko.BaseURL = "https://api.coingecko.com"
		logrus.Infof("CoinGecko.BaseURL not set, defaulting to %s", cfg.CoinGecko.BaseURL)
	}

	if cfg.Upstream.RequestTimeoutMillis == 0 {
		cfg.Upstream.RequestTimeoutMillis = 10000
		logrus.Infof("Upstream.RequestTimeoutMillis not set, defaulting to %d ms", cfg.Upstream.RequestTimeoutMillis)
	}
	if cfg.Upstream.RateLimit > 0 && cfg.Upstream.Burst == 0 {
		cfg.Upstream.Burst = 1
		logrus.Infof("Upstream.Burst not set, defaulting to %d", cfg.Upstream.Burst)
	}
	if cfg.Upstream.MaxConcurrentReports == 0 {
		cfg.Upstream.MaxConcurrentReports = 4
		logrus.Infof("Upstream.MaxConcurrentReports not set, defaulting to %d", cfg.Upstream.MaxConcurrentReports)
	}

	if cfg.PriceCache.TTLMinutes == 0 {
		cfg.PriceCache.TTLMinutes = 5
		logrus.Infof("PriceCache.TTLMinutes not set, defaulting to %d minutes", cfg.PriceCache.TTLMinutes)
	}
	if cfg.PriceCache.FallbackPrice == 0 {
		cfg.PriceCache.FallbackPrice = 0.85
		logrus.Infof("PriceCache.FallbackPrice not set, defaulting to %.2f", cfg.PriceCache.FallbackPrice)
	}

	if cfg.Payment.Mode == "" {
		cfg.Payment.Mode = "settlement-asset"
		logrus.Infof("Payment.Mode not set, defaulting to %s", cfg.Payment.Mode)
	}
	if cfg.Payment.Network == "" {
		cfg.Payment.Network = "mainnet"
	}
	if cfg.Payment.TokenType == "" {
		cfg.Payment.TokenType = "sBTC"
	}
	if cfg.Payment.TokenContract.Address == "" {
		cfg.Payment.TokenContract = TokenContractConfig{Address: "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9", Name: "token-sbtc"}
		logrus.Infof("Payment.TokenContract not set, defaulting to %s.%s", cfg.Payment.TokenContract.Address, cfg.Payment.TokenContract.Name)
	}
	if cfg.Payment.FullPrice == 0 {
		cfg.Payment.FullPrice = 2500
		logrus.Infof("Payment.FullPrice not set, defaulting to %d", cfg.Payment.FullPrice)
	}
	if cfg.Payment.QuickPrice == 0 {
		cfg.Payment.QuickPrice = 500
		logrus.Infof("Payment.QuickPrice not set, defaulting to %d", cfg.Payment.QuickPrice)
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Payment.Mode {
	case "settlement-asset":
	case "contract":
		if c.Payment.Contract == "" {
			return errors.New("payment.contract is required when payment.mode is contract")
		}
	default:
		return fmt.Errorf("unknown payment.mode %q", c.Payment.Mode)
	}
	if c.Payment.Enabled && c.Payment.PayTo == "" {
		return errors.New("payment.payTo is required when the payment gate is enabled")
	}
	if c.Upstream.RateLimit < 0 {
		return fmt.Errorf("upstream.rateLimit must not be negative, got %v", c.Upstream.RateLimit)
	}
	if c.PriceCache.FallbackPrice < 0 {
		return fmt.Errorf("priceCache.fallbackPrice must not be negative, got %v", c.PriceCache.FallbackPrice)
	}
	return nil
}
