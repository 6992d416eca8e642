package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// Storage drivers accepted by storage.driver
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Storage struct {
		Driver string `yaml:"driver"`
	} `yaml:"storage"`
	Database struct {
		ConnStr  string `yaml:"conn_str"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	GRPC struct {
		Addr     string `yaml:"addr"`
		APIToken string `yaml:"api_token"`
	} `yaml:"grpc"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Rebalance struct {
		ZeroAllocationPolicy string `yaml:"zero_allocation_policy"`
	} `yaml:"rebalance"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STORAGE"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DB_CONN_STR"); v != "" {
		cfg.Database.ConnStr = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("GRPC_ADDR"); v != "" {
		cfg.GRPC.Addr = v
	}
	if v := os.Getenv("API_TOKEN"); v != "" {
		cfg.GRPC.APIToken = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		if pretty, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Pretty = pretty
		}
	}
	if v := os.Getenv("ZERO_ALLOCATION_POLICY"); v != "" {
		cfg.Rebalance.ZeroAllocationPolicy = v
	}

	// Defaults
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.Password == "" {
		cfg.Database.Password = "postgres"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "rebalancer"
	}
	if cfg.GRPC.Addr == "" {
		cfg.GRPC.Addr = ":8080"
	}
	if cfg.GRPC.APIToken == "" {
		cfg.GRPC.APIToken = "dev-token"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Rebalance.ZeroAllocationPolicy == "" {
		cfg.Rebalance.ZeroAllocationPolicy = string(domain.ZeroAllocationSkip)
	}

	return cfg, nil
}

// DSN returns the explicit connection string, or builds one from the individual fields.
func (c *Config) DSN() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}

// ZeroAllocationPolicy returns the parsed zero allocation policy.
func (c *Config) ZeroAllocationPolicy() domain.ZeroAllocationPolicy {
	p, err := domain.ParseZeroAllocationPolicy(c.Rebalance.ZeroAllocationPolicy)
	if err != nil {
		return domain.ZeroAllocationSkip
	}
	return p
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, c.Storage.Driver)
	}
	if c.GRPC.Addr == "" {
		return fmt.Errorf("grpc.addr is required")
	}
	if c.GRPC.APIToken == "" {
		return fmt.Errorf("grpc.api_token is required")
	}
	if _, err := domain.ParseZeroAllocationPolicy(c.Rebalance.ZeroAllocationPolicy); err != nil {
		return fmt.Errorf("rebalance.zero_allocation_policy: %w", err)
	}
	return nil
}
