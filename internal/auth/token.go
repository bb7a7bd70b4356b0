// Package auth verifies identity provider tokens and carries the
// authenticated account through request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rookgm/bobis/internal/models"
)

const tokenTTL = time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptyKey     = errors.New("empty signing key")
)

// Claims are identity token claims
type Claims struct {
	jwt.RegisteredClaims
	Name              string   `json:"name,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Roles             []string `json:"roles,omitempty"`
	UserID            int64    `json:"uid,omitempty"`
}

// Token creates and verifies HS256 tokens
type Token struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewAuthToken creates Token with signing key
func NewAuthToken(key []byte) (*Token, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Token{key: key, ttl: tokenTTL, now: time.Now}, nil
}

// CreateToken signs token for account
func (t *Token) CreateToken(acc *models.Account) (string, error) {
	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Name:              acc.Name,
		PreferredUsername: acc.Username,
		Roles:             acc.Roles,
		UserID:            acc.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks token signature and expiry and returns its account
func (t *Token) VerifyToken(tokenString string) (*models.Account, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &models.Account{
		ID:       claims.Subject,
		UserID:   claims.UserID,
		Name:     claims.Name,
		Username: claims.PreferredUsername,
		Roles:    claims.Roles,
	}, nil
}
