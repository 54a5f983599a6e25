package appconf

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all the settings for the API server.
type Config struct {
	Port      int    `yaml:"port" validate:"gt=0,lte=65535"`
	EnvName   string `yaml:"env" validate:"omitempty,oneof=development test production"`
	DBPath    string `yaml:"db_path" validate:"required"`
	RateLimit int    `yaml:"rate_limit" validate:"gte=0"` // requests/second per client, 0 disables

	Env Environment `yaml:"-"`
}

// Default returns the configuration used when no file or flags override it.
func Default() Config {
	return Config{
		Port:      4000,
		EnvName:   "development",
		DBPath:    "obrail.db",
		RateLimit: 100,
	}
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and resolves the environment name.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Env = EnvFlagToEnvironment(c.EnvName)
	return nil
}
