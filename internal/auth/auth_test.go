package auth

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/bobis/config"
	"github.com/rookgm/bobis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_CreateVerify(t *testing.T) {
	tok, err := NewAuthToken([]byte("f53ac685bbceebd75043e6be2e06ee07"))
	require.NoError(t, err)

	acc := &models.Account{ID: "oid-1", UserID: 7, Name: "Ana Pérez", Username: "ana@bobis.pe", Roles: []string{"despacho"}}

	signed, err := tok.CreateToken(acc)
	require.NoError(t, err)

	got, err := tok.VerifyToken(signed)
	require.NoError(t, err)
	if diff := cmp.Diff(acc, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToken_VerifyRejects(t *testing.T) {
	key := []byte("f53ac685bbceebd75043e6be2e06ee07")
	tok, err := NewAuthToken(key)
	require.NoError(t, err)

	other, err := NewAuthToken([]byte("another-key"))
	require.NoError(t, err)
	foreign, err := other.CreateToken(&models.Account{ID: "oid-1"})
	require.NoError(t, err)

	expired, err := NewAuthToken(key)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.CreateToken(&models.Account{ID: "oid-1"})
	require.NoError(t, err)

	noSubject, err := tok.CreateToken(&models.Account{})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "oid-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "foreign_key", token: foreign},
		{name: "expired", token: stale},
		{name: "no_subject", token: noSubject},
		{name: "alg_none", token: none},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tok.VerifyToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewAuthToken_EmptyKey(t *testing.T) {
	_, err := NewAuthToken(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, ok := AccountFromContext(ctx)
	assert.False(t, ok)
	_, err := ForwardedToken(ctx)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	acc := &models.Account{ID: "oid-1"}
	ctx = WithAccount(ctx, acc, "raw-token")

	got, ok := AccountFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, acc, got)

	token, err := ForwardedToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "raw-token", token)
}

func TestLoginURL(t *testing.T) {
	cfg := config.AuthConfig{
		Authority:   "https://login.microsoftonline.com/common/",
		ClientID:    "client-1",
		RedirectURI: "http://localhost:8080/dashboard",
		Scope:       "User.Read",
	}

	raw := LoginURL(cfg, "state-1")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "login.microsoftonline.com", u.Host)
	assert.Equal(t, "/common/oauth2/v2.0/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:8080/dashboard", q.Get("redirect_uri"))
	assert.Equal(t, "User.Read", q.Get("scope"))
	assert.Equal(t, "state-1", q.Get("state"))
}
