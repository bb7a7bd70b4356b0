package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rookgm/bobis/internal/models"
)

// TokenSource provides bearer token for outgoing requests
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts function to TokenSource
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// BearerTransport stamps Authorization header on requests to API origin.
// Requests to any other origin pass through untouched.
type BearerTransport struct {
	base   http.RoundTripper
	api    *url.URL
	source TokenSource
}

// NewBearerTransport creates BearerTransport for API base URL
func NewBearerTransport(apiURL string, source TokenSource, base http.RoundTripper) (*BearerTransport, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base == nil {
		base = http.DefaultTransport
	}
	return &BearerTransport{
		base:   base,
		api:    u,
		source: source,
	}, nil
}

// targetsAPI reports whether request goes to API origin and path
func (t *BearerTransport) targetsAPI(u *url.URL) bool {
	if !strings.EqualFold(u.Scheme, t.api.Scheme) || !strings.EqualFold(u.Host, t.api.Host) {
		return false
	}
	prefix := strings.TrimSuffix(t.api.Path, "/")
	return prefix == "" || u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.targetsAPI(req.URL) {
		return t.base.RoundTrip(req)
	}

	token, err := t.source.Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}

	// RoundTripper must not modify the original request
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)

	return t.base.RoundTrip(r)
}
