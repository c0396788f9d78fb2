package middleware

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

const identityKey = "identity"

// Identity is the authenticated caller, decoded from verified token claims.
type Identity struct {
	ID    uint
	Email string
	Role  model.Role
}

// BindIdentity copies verified claims from the jwt middleware into a typed
// Identity on the request context. Requests without a verified token pass
// through unchanged.
func BindIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := c.Get("user").(*jwt.Token); ok {
				if claims, ok := token.Claims.(*auth.Claims); ok {
					c.Set(identityKey, Identity{
						ID:    claims.UserID,
						Email: claims.Email,
						Role:  claims.Role,
					})
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity bound to the request, if any.
func CurrentUser(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}

// RequireAdmin passes only authenticated callers with the ADMIN role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := CurrentUser(c)
			if !ok {
				return apperrors.ErrNotAuthenticated
			}
			if ident.Role != model.RoleAdmin {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireOwnerOrAdmin passes when the numeric path parameter equals the
// caller's id, or the caller is an admin. Trips do not rely on this gate:
// their ownership check lives inside the owner-scoped query itself.
func RequireOwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := CurrentUser(c)
			if !ok {
				return apperrors.ErrNotAuthenticated
			}

			targetID, err := strconv.ParseUint(c.Param(param), 10, 32)
			if err != nil {
				return apperrors.ErrInvalidUserID
			}

			if ident.ID != uint(targetID) && ident.Role != model.RoleAdmin {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}
