// Package workspace exposes the workspace settings endpoints of the ElevenLabs API.
package workspace

import (
	"context"
	"net/http"

	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

const (
	UserAutoProvisioningPath      = "v1/workspace/user-auto-provisioning"
	DefaultSharingPreferencesPath = "v1/workspace/default-sharing-preferences"
	ShareOptionsPath              = "v1/workspace/share-options"
)

// Client issues blocking workspace calls
type Client struct {
	api *client.APIClient
}

// NewClient creates a workspace client on top of a shared API client
func NewClient(api *client.APIClient) *Client {
	return &Client{
		api: api,
	}
}

// UpdateUserAutoProvisioning turns user auto provisioning on or off
func (c *Client) UpdateUserAutoProvisioning(ctx context.Context, enabled bool, opts ...client.RequestOption) (*client.Response[models.JSONValue], error) {
	body := models.UpdateUserAutoProvisioningRequest{Enabled: enabled}
	return client.Call[models.JSONValue](ctx, c.api, http.MethodPost, UserAutoProvisioningPath, body, opts...)
}

// GetDefaultSharingPreferences returns the groups new resources are shared with
func (c *Client) GetDefaultSharingPreferences(ctx context.Context, opts ...client.RequestOption) (*client.Response[models.DefaultSharingPreferences], error) {
	return client.Call[models.DefaultSharingPreferences](ctx, c.api, http.MethodGet, DefaultSharingPreferencesPath, nil, opts...)
}

// UpdateDefaultSharingPreferences replaces the default sharing groups
func (c *Client) UpdateDefaultSharingPreferences(ctx context.Context, groups []string, opts ...client.RequestOption) (*client.Response[models.JSONValue], error) {
	body := models.UpdateDefaultSharingPreferencesRequest{DefaultSharingGroups: groups}
	return client.Call[models.JSONValue](ctx, c.api, http.MethodPost, DefaultSharingPreferencesPath, body, opts...)
}

// GetShareOptions lists the principals resources can be shared with, in server order
func (c *Client) GetShareOptions(ctx context.Context, opts ...client.RequestOption) (*client.Response[[]models.ShareOption], error) {
	return client.Call[[]models.ShareOption](ctx, c.api, http.MethodGet, ShareOptionsPath, nil, opts...)
}
