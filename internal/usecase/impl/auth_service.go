// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "stash/internal/delivery/context"
	"stash/internal/domain/entity"
	domainerrors "stash/internal/domain/errors"
	"stash/internal/domain/repository"
	"stash/internal/domain/service"
	"stash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account and logs it in immediately. The
// store's unique constraint is the only duplicate-email check; the
// repository translates its violation into ErrUserAlreadyExists.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	return srv.issueToken(ctx, newUser)
}

// SignIn verifies the credentials against the stored digest and issues a token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Signin failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotRegistered.WrapMessage("signin failed")
		}

		return nil, errors.Wrap(err, "failed to load user during signin")
	}

	// bcrypt compare is CPU-bound; a mismatch is an expected outcome, not an error.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Signin failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}

	return srv.issueToken(ctx, user)
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Token issued", slog.Int64("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token}, nil
}
