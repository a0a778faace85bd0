package workspace

import (
	"context"

	"github.com/kelsos/elevenlabs-workspace/pkg/async"
	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

// AsyncClient starts workspace calls without blocking the caller.
// Each method runs the blocking Client method on its own goroutine.
type AsyncClient struct {
	sync *Client
}

func NewAsyncClient(api *client.APIClient) *AsyncClient {
	return &AsyncClient{sync: NewClient(api)}
}

// Async returns a non-blocking view sharing this client
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{sync: c}
}

func (c *AsyncClient) UpdateUserAutoProvisioning(ctx context.Context, enabled bool, opts ...client.RequestOption) *async.Future[*client.Response[models.JSONValue]] {
	return async.Go(ctx, func(ctx context.Context) (*client.Response[models.JSONValue], error) {
		return c.sync.UpdateUserAutoProvisioning(ctx, enabled, opts...)
	})
}

func (c *AsyncClient) GetDefaultSharingPreferences(ctx context.Context, opts ...client.RequestOption) *async.Future[*client.Response[models.DefaultSharingPreferences]] {
	return async.Go(ctx, func(ctx context.Context) (*client.Response[models.DefaultSharingPreferences], error) {
		return c.sync.GetDefaultSharingPreferences(ctx, opts...)
	})
}

func (c *AsyncClient) UpdateDefaultSharingPreferences(ctx context.Context, groups []string, opts ...client.RequestOption) *async.Future[*client.Response[models.JSONValue]] {
	return async.Go(ctx, func(ctx context.Context) (*client.Response[models.JSONValue], error) {
		return c.sync.UpdateDefaultSharingPreferences(ctx, groups, opts...)
	})
}

func (c *AsyncClient) GetShareOptions(ctx context.Context, opts ...client.RequestOption) *async.Future[*client.Response[[]models.ShareOption]] {
	return async.Go(ctx, func(ctx context.Context) (*client.Response[[]models.ShareOption], error) {
		return c.sync.GetShareOptions(ctx, opts...)
	})
}
