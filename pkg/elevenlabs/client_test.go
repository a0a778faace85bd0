package elevenlabs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/workspace"
)

func TestNewClientWiresWorkspace(t *testing.T) {
	var gotKey string
	r := chi.NewRouter()
	r.Get("/"+workspace.ShareOptionsPath, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(client.APIKeyHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Everyone","id":"grp-1","type":"group"}]`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c, err := NewClient("secret", client.WithBaseURL(srv.URL))
	require.NoError(t, err)
	require.NotNil(t, c.Workspace)
	assert.Equal(t, srv.URL, c.API().BaseURL())

	resp, err := c.Workspace.GetShareOptions(context.Background())
	require.NoError(t, err)
	require.True(t, resp.HasData())
	assert.Len(t, *resp.Data, 1)
	assert.Equal(t, "secret", gotKey)
}

func TestNewClientDefaultsToProduction(t *testing.T) {
	c, err := NewClient("secret")
	require.NoError(t, err)
	assert.Equal(t, client.Production.Base, c.API().BaseURL())
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient("secret", client.WithBaseURL("not a url"))
	require.Error(t, err)
}
