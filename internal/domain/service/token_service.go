package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID int64  `json:"-"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID int64, email string) (string, error)

	// ValidateToken checks the validity of a token string: signature,
	// structure and expiry. It returns the decoded claims on success.
	ValidateToken(tokenString string) (*Claims, error)
}
