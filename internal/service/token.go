package service

import "github.com/rookgm/bobis/internal/models"

// TokenService verifies identity provider tokens
type TokenService interface {
	CreateToken(acc *models.Account) (string, error)
	VerifyToken(tokenString string) (*models.Account, error)
}
