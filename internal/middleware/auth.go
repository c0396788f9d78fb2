package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
)

// Authenticate verifies the bearer token and rejects the request at the first
// failure. The three failure kinds stay distinct because they drive different
// client messages: no token at all, a token that fails verification, and a
// token whose expiry has passed.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		NewClaimsFunc: newClaims,
		ErrorHandler:  authErrorHandler,
	})
}

// OptionalAuthenticate binds an identity when a valid token is present and
// continues anonymously otherwise. Used for routes like logout that work with
// or without a session.
func OptionalAuthenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:             []byte(secret),
		NewClaimsFunc:          newClaims,
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
}

func newClaims(c echo.Context) jwt.Claims {
	return new(auth.Claims)
}

func authErrorHandler(c echo.Context, err error) error {
	var tokenErr *echojwt.TokenError
	if errors.As(err, &tokenErr) {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.ErrTokenExpired
		}
		return apperrors.ErrInvalidToken
	}
	// No token was extracted at all.
	return apperrors.ErrNotAuthenticated
}
