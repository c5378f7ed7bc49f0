package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "stash/internal/domain/errors"
	"stash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(uc *mockAuthUsecase) *echo.Echo {
	e := newTestEcho()
	h := NewAuthHandler(uc)
	e.POST("/auth/signup", h.SignUp)
	e.POST("/auth/signin", h.SignIn)

	return e
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("returns 201 with an access token", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("SignUp", mock.Anything, &usecase.SignUpInput{
			Email:    "testuser@gmail.com",
			Password: "testuser",
		}).Return(&usecase.TokenOutput{AccessToken: "the-token"}, nil)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signup", `{"email":"testuser@gmail.com","password":"testuser"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)

		var data struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "the-token", data.AccessToken)
	})

	t.Run("returns 400 when the email is missing", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signup", `{"password":"testuser"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)

		uc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("returns 400 when the email is malformed", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"testuser"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 400 when the password is missing", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signup", `{"email":"testuser@gmail.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 403 for a duplicate email", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("SignUp", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed"))
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signup", `{"email":"testuser@gmail.com","password":"testuser"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	t.Run("returns 200 with an access token", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("SignIn", mock.Anything, &usecase.SignInInput{
			Email:    "testuser@gmail.com",
			Password: "testuser",
		}).Return(&usecase.TokenOutput{AccessToken: "the-token"}, nil)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signin", `{"email":"testuser@gmail.com","password":"testuser"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			AccessToken string `json:"access_token"`
		}
		env := decodeEnvelope(t, rec)
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "the-token", data.AccessToken)
	})

	t.Run("returns 403 for an unknown email", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserNotRegistered.WrapMessage("signin failed"))
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signin", `{"email":"nobody@gmail.com","password":"testuser"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "USER_NOT_REGISTERED", env.Error.Code)
	})

	t.Run("returns 403 for a wrong password", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed"))
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signin", `{"email":"testuser@gmail.com","password":"wrong"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	})

	t.Run("returns 400 for a missing body", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		e := newAuthTestServer(uc)

		rec := doJSON(e, http.MethodPost, "/auth/signin", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}
