package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the service configuration loaded from config.toml.
// Secrets can be overridden through the environment (.env is loaded when
// present) so they never have to live in the toml file.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	StudioCatalog StudioCatalogConfig `toml:"studio_catalog"`
	Midtrans      MidtransConfig      `toml:"midtrans"`
	Jobs          JobsConfig          `toml:"jobs"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StudioCatalogConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

type MidtransConfig struct {
	ServerKey   string `toml:"server_key"`
	Environment string `toml:"environment"` // "sandbox" or "production"
}

// JobsConfig holds the cron specs of the background jobs
type JobsConfig struct {
	AutoCancelSpec   string `toml:"auto_cancel_spec"`
	CompletePastSpec string `toml:"complete_past_spec"`
}

// Load reads the configuration file and applies environment overrides
func Load(path string) (*Config, error) {
	// missing .env is fine, real deployments use actual env vars
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("MIDTRANS_SERVER_KEY"); v != "" {
		cfg.Midtrans.ServerKey = v
	}
	if v := os.Getenv("STUDIO_CATALOG_URL"); v != "" {
		cfg.StudioCatalog.URL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.StudioCatalog.URL == "" {
		return fmt.Errorf("config: studio_catalog.url is required")
	}
	if c.Jobs.AutoCancelSpec == "" {
		c.Jobs.AutoCancelSpec = "@every 1m"
	}
	if c.Jobs.CompletePastSpec == "" {
		c.Jobs.CompletePastSpec = "@every 15m"
	}
	return nil
}
