package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"stash/internal/delivery/http/middleware"
	"stash/internal/delivery/http/validator"
	"stash/internal/domain/entity"
	"stash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance wired the same way the server is:
// struct-tag validation plus the central error handler, so handler
// errors map to the envelope exactly as they do in production.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

// authAs simulates a request that already passed the auth middleware.
func authAs(userID int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.UserIDKey, userID)

			return next(c)
		}
	}
}

// doJSON performs a JSON request against the echo instance and returns
// the recorded response.
func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// envelope mirrors the response package's JSON shape for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TokenOutput), args.Error(1)
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TokenOutput), args.Error(1)
}

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserUsecase) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

type mockBookmarkUsecase struct {
	mock.Mock
}

func (m *mockBookmarkUsecase) List(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Bookmark), args.Error(1)
}

func (m *mockBookmarkUsecase) Get(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error) {
	args := m.Called(ctx, userID, bookmarkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Bookmark), args.Error(1)
}

func (m *mockBookmarkUsecase) Create(ctx context.Context, userID int64, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Bookmark), args.Error(1)
}

func (m *mockBookmarkUsecase) Update(ctx context.Context, userID, bookmarkID int64, input *usecase.UpdateBookmarkInput) (*entity.Bookmark, error) {
	args := m.Called(ctx, userID, bookmarkID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Bookmark), args.Error(1)
}

func (m *mockBookmarkUsecase) Delete(ctx context.Context, userID, bookmarkID int64) error {
	args := m.Called(ctx, userID, bookmarkID)

	return args.Error(0)
}
