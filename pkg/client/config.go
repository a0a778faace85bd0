package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/kelsos/elevenlabs-workspace/internal/validation"
)

const (
	// APIKeyHeader carries the static API key on every request
	APIKeyHeader     = "xi-api-key"
	DefaultUserAgent = "elevenlabs-workspace-go/1.0.0"
	DefaultTimeout   = 240 * time.Second
)

var validate = validation.New()

// Config holds the read-only settings shared by every call
type Config struct {
	Environment Environment       `json:"-"`
	BaseURL     string            `json:"base_url" validate:"required,url"`
	APIKey      string            `json:"api_key"`
	Timeout     time.Duration     `json:"timeout" validate:"gte=0s"`
	UserAgent   string            `json:"user_agent" validate:"required"`
	Headers     map[string]string `json:"headers"`
	HTTPClient  *http.Client      `json:"-" validate:"-"`
}

// DefaultConfig returns the production configuration without an API key
func DefaultConfig() Config {
	return Config{
		Environment: Production,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
	}
}

// ResolvedBaseURL returns the explicit base URL, falling back to the environment
func (c Config) ResolvedBaseURL() string {
	base := c.BaseURL
	if base == "" {
		base = c.Environment.Base
	}
	return strings.TrimRight(base, "/")
}

// Validate checks the configuration after the base URL is resolved
func (c Config) Validate() error {
	resolved := c
	resolved.BaseURL = c.ResolvedBaseURL()
	return validation.Format("invalid client config", validate.Struct(resolved))
}

// Option mutates a Config during construction
type Option func(*Config)

// WithEnvironment selects a predefined or custom environment
func WithEnvironment(env Environment) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithBaseURL overrides the environment base address
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

func WithAPIKey(apiKey string) Option {
	return func(c *Config) {
		c.APIKey = apiKey
	}
}

// WithTimeout bounds every call, including calls made through WithHTTPClient.
// A per-call WithRequestTimeout takes precedence; zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithHeader adds a default header sent on every call
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		c.Headers[key] = value
	}
}

// WithHTTPClient makes the transport use a caller-owned http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = httpClient
	}
}
