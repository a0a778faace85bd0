package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

func errorsAs(err error, target any) bool {
	return errors.As(err, target)
}

func TestNewAPIClientDefaults(t *testing.T) {
	c, err := NewAPIClient()
	require.NoError(t, err)
	assert.Equal(t, "https://api.elevenlabs.io", c.BaseURL())
	assert.Equal(t, "https://api.elevenlabs.io/v1/workspace/share-options", c.BuildURL("v1/workspace/share-options"))
	assert.Equal(t, "https://api.elevenlabs.io/v1/workspace/share-options", c.BuildURL("/v1/workspace/share-options"))
}

func TestNewAPIClientBaseURLOverride(t *testing.T) {
	c, err := NewAPIClient(WithEnvironment(ProductionEU), WithBaseURL("http://localhost:8080/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL())

	c, err = NewAPIClient(WithEnvironment(ProductionUS))
	require.NoError(t, err)
	assert.Equal(t, ProductionUS.Base, c.BaseURL())
}

func TestNewAPIClientRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"bad url", []Option{WithBaseURL("not a url")}, "base_url must be a valid URL"},
		{"no base", []Option{WithEnvironment(Environment{Name: "empty"})}, "base_url is required"},
		{"negative timeout", []Option{WithTimeout(-time.Second)}, "timeout must be at least 0s"},
		{"no user agent", []Option{WithUserAgent("")}, "user_agent is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAPIClient(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnvironmentByName(t *testing.T) {
	env, err := EnvironmentByName(" Production_EU ")
	require.NoError(t, err)
	assert.Equal(t, ProductionEU, env)

	_, err = EnvironmentByName("staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production, production_eu, production_us")
}

func TestCallSendsDefaultAndPerCallHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewAPIClient(
		WithBaseURL(srv.URL),
		WithAPIKey("k"),
		WithUserAgent("ua/1"),
		WithHeader("X-Default", "d"),
	)
	require.NoError(t, err)

	resp, err := Call[models.JSONValue](context.Background(), c, http.MethodGet, "v1/x", nil,
		WithRequestHeader("X-Default", "override"),
		WithRequestHeader("X-Call", "c"),
	)
	require.NoError(t, err)
	assert.False(t, resp.HasData())

	assert.Equal(t, "k", got.Get(APIKeyHeader))
	assert.Equal(t, "ua/1", got.Get("User-Agent"))
	assert.Equal(t, "override", got.Get("X-Default"))
	assert.Equal(t, "c", got.Get("X-Call"))
}

func TestCallWithoutAPIKeyOmitsHeader(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	c, err := NewAPIClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = Call[models.JSONValue](context.Background(), c, http.MethodGet, "v1/x", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Values(APIKeyHeader))
}

func TestCallBodyParametersWithoutBody(t *testing.T) {
	var body []byte
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		contentType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	c, err := NewAPIClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = Call[models.JSONValue](context.Background(), c, http.MethodPost, "v1/x", nil, WithBodyParameter("a", 1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(body))
	assert.Equal(t, "application/json", contentType)
}

func TestCallRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewAPIClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	start := time.Now()
	_, err = Call[models.JSONValue](context.Background(), c, http.MethodGet, "v1/slow", nil, WithRequestTimeout(50*time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCallConfigTimeoutWithCustomHTTPClient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	httpClient := &http.Client{}
	c, err := NewAPIClient(WithBaseURL(srv.URL), WithHTTPClient(httpClient), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	start := time.Now()
	_, err = Call[models.JSONValue](context.Background(), c, http.MethodGet, "v1/slow", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Zero(t, httpClient.Timeout)
}

func TestCallHonoursCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c, err := NewAPIClient(WithBaseURL(srv.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Call[models.JSONValue](ctx, c, http.MethodGet, "v1/x", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodeBody(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		payload, err := encodeBody(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("plain body", func(t *testing.T) {
		payload, err := encodeBody(models.UpdateUserAutoProvisioningRequest{Enabled: true}, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"enabled":true}`, string(payload))
	})

	t.Run("merged parameters override", func(t *testing.T) {
		payload, err := encodeBody(models.UpdateUserAutoProvisioningRequest{Enabled: true}, map[string]any{
			"enabled": false,
			"extra":   []string{"x"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"enabled":false,"extra":["x"]}`, string(payload))
	})

	t.Run("absent optional fields are omitted", func(t *testing.T) {
		type body struct {
			Name  models.Optional[string] `json:"name,omitzero"`
			Notes models.Optional[string] `json:"notes,omitzero"`
		}
		payload, err := encodeBody(body{Notes: models.Null[string]()}, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"notes":null}`, string(payload))
	})

	t.Run("non object body cannot take parameters", func(t *testing.T) {
		_, err := encodeBody([]string{"a"}, map[string]any{"b": 1})
		require.Error(t, err)
	})
}

func TestNewRequestOptions(t *testing.T) {
	base := RequestOptions{
		Timeout:                  time.Second,
		AdditionalHeaders:        map[string]string{"A": "1"},
		AdditionalBodyParameters: map[string]any{"x": 1},
	}

	opts := NewRequestOptions(
		WithRequestHeader("B", "2"),
		WithRequestOptions(base),
		nil,
		WithQueryParameter("q", "v"),
	)

	assert.Equal(t, time.Second, opts.Timeout)
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, opts.AdditionalHeaders)
	assert.Equal(t, map[string]string{"q": "v"}, opts.AdditionalQueryParameters)
	assert.Equal(t, map[string]any{"x": 1}, opts.AdditionalBodyParameters)
}
