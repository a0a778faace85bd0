// Package elevenlabs is the entry point of the ElevenLabs API client.
package elevenlabs

import (
	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/workspace"
)

// Client composes the API sub-clients on one shared transport
type Client struct {
	api *client.APIClient

	Workspace *workspace.Client
}

// NewClient creates a client sending apiKey on every call. Options applied after the key may override it.
func NewClient(apiKey string, opts ...client.Option) (*Client, error) {
	cfg := client.DefaultConfig()
	cfg.APIKey = apiKey
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client from a complete configuration
func NewClientWithConfig(cfg client.Config) (*Client, error) {
	api, err := client.NewAPIClientWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		api:       api,
		Workspace: workspace.NewClient(api),
	}, nil
}

// API returns the shared transport, for calls not covered by a sub-client
func (c *Client) API() *client.APIClient {
	return c.api
}
