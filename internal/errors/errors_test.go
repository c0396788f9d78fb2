package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrMissingFields, http.StatusBadRequest, "MISSING_FIELDS"},
		{ErrInvalidTripID, http.StatusBadRequest, "INVALID_ID"},
		{ErrInvalidUserID, http.StatusBadRequest, "INVALID_ID"},
		{ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{ErrInvalidRole, http.StatusBadRequest, "INVALID_ROLE"},
		{ErrInvalidPassword, http.StatusBadRequest, "INVALID_PASSWORD"},
		{ErrCannotDeleteSelf, http.StatusBadRequest, "CANNOT_DELETE_SELF"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrTripNotFound, http.StatusNotFound, "NOT_FOUND"},
		{ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{ErrEmailTaken, http.StatusConflict, "USER_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("looking up account: %w", ErrUserNotFound)

	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}

func TestMapErrorToHTTP_UnknownErrorHidesDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestHTTPError_ToErrorResponse(t *testing.T) {
	httpErr := NewHTTPError(http.StatusTeapot, "short and stout", "TEAPOT")

	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "short and stout", resp.Error)
	assert.Equal(t, "TEAPOT", resp.Code)
	assert.Equal(t, "short and stout", httpErr.Error())
}
