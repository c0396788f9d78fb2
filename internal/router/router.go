package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tripplanner/internal/config"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/handler"
	appmw "tripplanner/internal/middleware"
)

// Register wires routes and middleware. Every route has exactly one
// definition.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	tripHandler *handler.TripHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", health)

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	// Logout works with or without a live session.
	api.POST("/auth/logout", authHandler.Logout,
		appmw.OptionalAuthenticate(cfg.JWTSecret), appmw.BindIdentity())

	// Trip routes require authentication; ownership is enforced inside the
	// service's owner-scoped queries.
	trips := api.Group("/trips",
		appmw.Authenticate(cfg.JWTSecret), appmw.BindIdentity())
	trips.GET("", tripHandler.List)
	trips.POST("", tripHandler.Create)
	trips.GET("/:id", tripHandler.Get)
	trips.PUT("/:id", tripHandler.Update)
	trips.DELETE("/:id", tripHandler.Delete)

	// Admin routes require authentication and the ADMIN role.
	admin := api.Group("/admin",
		appmw.Authenticate(cfg.JWTSecret), appmw.BindIdentity(), appmw.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)
	admin.PUT("/users/:id/password", adminHandler.UpdatePassword)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Success:   true,
		Message:   "API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewHTTPErrorHandler renders every error through the shared taxonomy.
// Unknown errors collapse to a generic 500; their detail reaches the client
// only outside production.
func NewHTTPErrorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apperrors.HTTPError
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			// already shaped
		case errors.As(err, &echoErr):
			httpErr = fromEchoError(echoErr)
		default:
			httpErr = apperrors.MapErrorToHTTP(err)
		}

		if httpErr.StatusCode >= http.StatusInternalServerError {
			c.Logger().Error(err)
			if cfg.IsProduction() {
				httpErr = apperrors.NewHTTPError(httpErr.StatusCode, "internal server error", "INTERNAL_ERROR")
			} else {
				httpErr = apperrors.NewHTTPError(httpErr.StatusCode, err.Error(), "INTERNAL_ERROR")
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(httpErr.StatusCode)
			return
		}
		_ = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
}

func fromEchoError(echoErr *echo.HTTPError) *apperrors.HTTPError {
	message := fmt.Sprintf("%v", echoErr.Message)
	code := "BAD_REQUEST"
	switch echoErr.Code {
	case http.StatusNotFound:
		message = "Route not found"
		code = "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		code = "METHOD_NOT_ALLOWED"
	case http.StatusUnauthorized:
		code = "NOT_AUTHENTICATED"
	case http.StatusInternalServerError:
		code = "INTERNAL_ERROR"
	}
	return apperrors.NewHTTPError(echoErr.Code, message, code)
}
