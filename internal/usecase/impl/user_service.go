package impl

import (
	"context"
	"log/slog"

	deliverycontext "stash/internal/delivery/context"
	"stash/internal/domain/entity"
	"stash/internal/domain/repository"
	"stash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe loads the caller's own record. The userID comes from the
// verified token, so a missing row is a server-side inconsistency.
func (srv *userService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user profile", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	sanitized := user.Sanitized()

	return &sanitized, nil
}

// UpdateProfile applies only the supplied fields to the caller's record.
func (srv *userService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user for profile update", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Int64("userID", userID))

	sanitized := user.Sanitized()

	return &sanitized, nil
}
