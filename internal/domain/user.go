package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é a identidade opaca exposta pelo provedor de identidade
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims são as claims do token de sessão emitido pelo provedor local
type Claims struct {
	UserID          int
	UserEmail       string
	UserDisplayName string
	jwt.RegisteredClaims
}
