package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kelsos/elevenlabs-workspace/internal/logger"
)

// APIClient handles all HTTP communication with the ElevenLabs API.
// It is read-only after construction and safe for concurrent use.
type APIClient struct {
	config  Config
	baseURL string
	http    *resty.Client
}

// NewAPIClient creates a client from the default configuration and opts
func NewAPIClient(opts ...Option) (*APIClient, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewAPIClientWithConfig(cfg)
}

// NewAPIClientWithConfig creates a client from a complete configuration
func NewAPIClientWithConfig(cfg Config) (*APIClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// timeouts are applied per call through the context
	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetLogger(restyLogger{})
	rc.SetHeader("User-Agent", cfg.UserAgent)
	if cfg.APIKey != "" {
		rc.SetHeader(APIKeyHeader, cfg.APIKey)
	}
	for key, value := range cfg.Headers {
		rc.SetHeader(key, value)
	}

	return &APIClient{
		config:  cfg,
		baseURL: cfg.ResolvedBaseURL(),
		http:    rc,
	}, nil
}

// BaseURL returns the resolved base address
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// BuildURL joins the base address and a static endpoint path
func (c *APIClient) BuildURL(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Call issues exactly one request and interprets the response as T
func Call[T any](ctx context.Context, c *APIClient, method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	options := NewRequestOptions(opts...)
	timeout := c.config.Timeout
	if options.Timeout > 0 {
		timeout = options.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	url := c.BuildURL(path)
	start := time.Now()
	logger.Debug("Starting %s request to %s", method, url)

	payload, err := encodeBody(body, options.AdditionalBodyParameters)
	if err != nil {
		return nil, err
	}

	req := c.http.R().SetContext(ctx)
	if payload != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(payload)
	}
	if len(options.AdditionalHeaders) > 0 {
		req.SetHeaders(options.AdditionalHeaders)
	}
	if len(options.AdditionalQueryParameters) > 0 {
		req.SetQueryParams(options.AdditionalQueryParameters)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		logger.Error("Request to %s failed after %v: %v", url, time.Since(start), err)
		return nil, fmt.Errorf("%s %s: request failed: %w", method, path, err)
	}

	logger.Debug("Request to %s completed in %v with status %d", url, time.Since(start), resp.StatusCode())

	result, err := Interpret[T](resp.StatusCode(), resp.Header(), resp.Body())
	if err != nil {
		logger.Debug("%s %s: %v", method, path, err)
		return nil, err
	}
	return result, nil
}

// encodeBody marshals body and merges extra top-level fields into it.
// A nil body with no extras means the request carries no body at all.
func encodeBody(body any, extra map[string]any) ([]byte, error) {
	if body == nil && len(extra) == 0 {
		return nil, nil
	}

	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshaling request body: %w", err)
		}
	}
	if len(extra) == 0 {
		return encoded, nil
	}

	fields := make(map[string]json.RawMessage)
	if body != nil {
		if err := json.Unmarshal(encoded, &fields); err != nil {
			return nil, fmt.Errorf("additional body parameters need a JSON object body: %w", err)
		}
	}
	for key, value := range extra {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("error marshaling body parameter %q: %w", key, err)
		}
		fields[key] = raw
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request body: %w", err)
	}
	return merged, nil
}

// restyLogger routes resty's own diagnostics through the shared logger
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logger.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logger.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logger.Debug(format, v...) }
