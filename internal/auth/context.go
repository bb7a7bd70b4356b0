package auth

import (
	"context"

	"github.com/rookgm/bobis/internal/models"
)

type contextKey int

const (
	accountKey contextKey = iota
	tokenKey
)

// WithAccount returns context carrying authenticated account and its raw token
func WithAccount(ctx context.Context, acc *models.Account, token string) context.Context {
	ctx = context.WithValue(ctx, accountKey, acc)
	return context.WithValue(ctx, tokenKey, token)
}

// AccountFromContext returns authenticated account
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	acc, ok := ctx.Value(accountKey).(*models.Account)
	return acc, ok && acc != nil
}

// TokenFromContext returns raw token of authenticated account
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// ForwardedToken returns token of the request being served. It is used to
// call backend on behalf of operator.
func ForwardedToken(ctx context.Context) (string, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return "", models.ErrUnauthenticated
	}
	return token, nil
}
