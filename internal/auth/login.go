package auth

import (
	"net/url"
	"strings"

	"github.com/rookgm/bobis/config"
)

// LoginURL returns authorize endpoint of identity provider
func LoginURL(cfg config.AuthConfig, state string) string {
	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", cfg.RedirectURI)
	q.Set("response_mode", "query")
	q.Set("scope", cfg.Scope)
	q.Set("state", state)

	return strings.TrimRight(cfg.Authority, "/") + "/oauth2/v2.0/authorize?" + q.Encode()
}
