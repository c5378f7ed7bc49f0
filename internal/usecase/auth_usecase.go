// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the credentials required to register a new account.
type SignUpInput struct {
	Email    string
	Password string
}

// SignInInput defines the credentials required to log in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput carries the issued bearer token. Signup and signin are
// symmetric: both authenticate the caller and return a token.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp hashes the password, persists the user and issues a token.
	// A duplicate email surfaces as domainerrors.ErrUserAlreadyExists.
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)

	// SignIn verifies the credentials and issues a token. Unknown email
	// surfaces as ErrUserNotRegistered, a bad password as ErrInvalidCredentials.
	SignIn(ctx context.Context, input *SignInInput) (*TokenOutput, error)
}
