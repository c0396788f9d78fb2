package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tripplanner/internal/auth"
	"tripplanner/internal/config"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/handler"
	"tripplanner/internal/middleware"
	"tripplanner/internal/model"
	"tripplanner/internal/router"
)

// testValidator mirrors the wiring done by the router.
type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.HTTPErrorHandler = router.NewHTTPErrorHandler(&config.Config{Env: "test"})
	return e
}

// asIdentity short-circuits the jwt middleware by planting a parsed token
// before BindIdentity runs.
func asIdentity(id uint, email string, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
				UserID: id,
				Email:  email,
				Role:   role,
			}))
			return middleware.BindIdentity()(next)(c)
		}
	}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, name, surname, password string) (*model.User, error) {
	args := m.Called(ctx, email, name, surname, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func newAuthServer(svc *MockAuthService) *echo.Echo {
	e := newTestEcho()
	h := handler.NewAuthHandler(svc)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/logout", h.Logout)
	return e
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "new@example.com", "New", "User", "password123").
			Return(&model.User{
				ID:      7,
				Email:   "new@example.com",
				Name:    "New",
				Surname: "User",
				Role:    model.RoleUser,
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}, nil)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/register",
			`{"email":"new@example.com","name":"New","surname":"User","password":"password123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"success":true`)
		assert.Contains(t, body, "Account created successfully")
		assert.Contains(t, body, `"email":"new@example.com"`)
		// The credential hash must never reach the wire.
		assert.NotContains(t, body, "password")
		svc.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		svc := new(MockAuthService)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/register",
			`{"email":"new@example.com","name":"New","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_FIELDS")
		svc.AssertNotCalled(t, "Register")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockAuthService)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/register", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "taken@example.com", "New", "User", "password123").
			Return(nil, apperrors.ErrEmailTaken)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/register",
			`{"email":"taken@example.com","name":"New","surname":"User","password":"password123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "user@example.com", "password123").
			Return("signed.jwt.token", &model.User{
				ID:    7,
				Email: "user@example.com",
				Role:  model.RoleUser,
			}, nil)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/login",
			`{"email":"user@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"token":"signed.jwt.token"`)
		assert.Contains(t, body, `"email":"user@example.com"`)
		assert.NotContains(t, body, "password")
		svc.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		svc := new(MockAuthService)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/login",
			`{"email":"user@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_FIELDS")
		svc.AssertNotCalled(t, "Login")
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "user@example.com", "wrong").
			Return("", nil, apperrors.ErrInvalidCredentials)

		rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/login",
			`{"email":"user@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)

	rec := doJSON(newAuthServer(svc), http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}
