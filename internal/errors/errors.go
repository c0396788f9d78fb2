package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure the API distinguishes. Services return
// these; the HTTP layer translates them through MapErrorToHTTP. Credential
// and ownership failures deliberately share responses with plain absence so
// callers cannot probe for accounts or foreign resources.
var (
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidTripID is returned when a trip id is not a canonical UUID.
	ErrInvalidTripID = errors.New("trip ID must be a valid UUID")
	// ErrInvalidUserID is returned when a user id does not parse as a number.
	ErrInvalidUserID = errors.New("user ID must be a number")
	// ErrInvalidDate is returned when a date field is not a calendar date.
	ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")
	// ErrInvalidRole is returned when a role is not USER or ADMIN.
	ErrInvalidRole = errors.New("role must be USER or ADMIN")
	// ErrInvalidPassword is returned when a password is shorter than 6 characters.
	ErrInvalidPassword = errors.New("password must be at least 6 characters long")
	// ErrInvalidCredentials is returned on login failure; wrong email and wrong
	// password are indistinguishable by design.
	ErrInvalidCredentials = errors.New("wrong email or password")
	// ErrNotAuthenticated is returned when a protected route is hit without a token.
	ErrNotAuthenticated = errors.New("authentication required")
	// ErrInvalidToken is returned when a token fails signature or structure checks.
	ErrInvalidToken = errors.New("your session is invalid, please log in again")
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("your session has expired, please log in again")
	// ErrForbidden is returned when the caller's role does not permit the action.
	ErrForbidden = errors.New("you do not have permission to access this resource")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrTripNotFound covers both nonexistent trips and trips owned by someone else.
	ErrTripNotFound = errors.New("trip not found")
	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrCannotDeleteSelf is returned when an admin targets their own account.
	ErrCannotDeleteSelf = errors.New("you cannot delete your own account")
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs a sentinel with its HTTP status and machine-readable code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to its response body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors, store
// failures included, collapse to a generic 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidTripID), errors.Is(err, ErrInvalidUserID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrCannotDeleteSelf):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CANNOT_DELETE_SELF")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrTripNotFound), errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
