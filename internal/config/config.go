package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/kelsos/elevenlabs-workspace/internal/validation"
	"github.com/kelsos/elevenlabs-workspace/pkg/client"
)

const EnvPrefix = "ELEVENLABS"

var validate = validation.New()

// Config holds all CLI configuration
type Config struct {
	// API settings
	APIKey      string `mapstructure:"api_key"`
	Environment string `mapstructure:"environment" validate:"required,oneof=production production_us production_eu"`
	BaseURL     string `mapstructure:"base_url" validate:"omitempty,url"`

	// Transport settings
	TimeoutSeconds int           `mapstructure:"timeout" validate:"gte=0"`
	Timeout        time.Duration `mapstructure:"-"`
	UserAgent      string        `mapstructure:"user_agent" validate:"required"`

	// Presentation settings
	Output   string `mapstructure:"output" validate:"oneof=table json"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	LogDir   string `mapstructure:"log_dir" validate:"required"`
}

// NewViper returns a viper instance with defaults and environment bindings
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("api_key", "")
	v.SetDefault("environment", client.Production.Name)
	v.SetDefault("base_url", "")
	v.SetDefault("timeout", int(client.DefaultTimeout/time.Second))
	v.SetDefault("user_agent", client.DefaultUserAgent)
	v.SetDefault("output", "table")
	v.SetDefault("log_level", "")
	v.SetDefault("log_dir", "logs")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.Format("invalid configuration", validate.Struct(c))
}

// ClientOptions translates the configuration into API client options
func (c *Config) ClientOptions() ([]client.Option, error) {
	env, err := client.EnvironmentByName(c.Environment)
	if err != nil {
		return nil, err
	}

	opts := []client.Option{
		client.WithEnvironment(env),
		client.WithTimeout(c.Timeout),
		client.WithUserAgent(c.UserAgent),
	}
	if c.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(c.BaseURL))
	}
	if c.APIKey != "" {
		opts = append(opts, client.WithAPIKey(c.APIKey))
	}
	return opts, nil
}
