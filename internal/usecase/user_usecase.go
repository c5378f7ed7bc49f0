package usecase

import (
	"context"

	"stash/internal/domain/entity"
)

// UpdateProfileInput defines a partial edit of the caller's own profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserUsecase defines operations on the authenticated user's own record.
type UserUsecase interface {
	// GetMe returns the caller's profile with the password digest stripped.
	GetMe(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateProfile applies the supplied fields to the caller's record.
	// An email collision surfaces as domainerrors.ErrUserAlreadyExists.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
}
