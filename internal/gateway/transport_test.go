package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rookgm/bobis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestBearerTransport_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantHeader string
	}{
		{
			name:       "api_request_is_stamped",
			url:        "http://localhost:5000/api/registros",
			wantHeader: "Bearer secret",
		},
		{
			name:       "api_root_is_stamped",
			url:        "http://localhost:5000/api",
			wantHeader: "Bearer secret",
		},
		{
			name: "other_path_on_same_host",
			url:  "http://localhost:5000/apiv2/registros",
		},
		{
			name: "other_origin",
			url:  "https://graph.example.com/v1.0/me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
				got = r.Header.Get("Authorization")
				return httptest.NewRecorder().Result(), nil
			})
			src := TokenSourceFunc(func(ctx context.Context) (string, error) {
				return "secret", nil
			})

			tr, err := NewBearerTransport("http://localhost:5000/api", src, base)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodGet, tt.url, nil)
			require.NoError(t, err)

			_, err = tr.RoundTrip(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, got)
			assert.Empty(t, req.Header.Get("Authorization"))
		})
	}
}

func TestBearerTransport_TokenFailure(t *testing.T) {
	called := false
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return httptest.NewRecorder().Result(), nil
	})
	src := TokenSourceFunc(func(ctx context.Context) (string, error) {
		return "", errors.New("no active account")
	})

	srvURL := "http://localhost:5000/api"
	tr, err := NewBearerTransport(srvURL, src, base)
	require.NoError(t, err)

	c := NewClient(srvURL, tr)
	_, err = c.ListOrdersInProgress(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnauthenticated))
	assert.False(t, models.IsConnectionError(err))
	assert.False(t, called)
}
