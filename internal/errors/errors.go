package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when username or email is already registered.
	ErrUserExists = errors.New("user already registered")
	// ErrUsernameTaken is returned when a profile update collides on username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when a profile update collides on email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid account or not registered")
	// ErrInvalidPassword is returned when the password does not match on login.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrPasswordFieldsRequired is returned when a password change omits one of
	// current, new, or retyped password.
	ErrPasswordFieldsRequired = errors.New("to change the password, provide current password, new password, and retype new password")
	// ErrPasswordMismatch is returned when new and retyped passwords differ.
	ErrPasswordMismatch = errors.New("new password and retype new password do not match")
	// ErrCurrentPasswordWrong is returned when the current password fails verification.
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	// ErrNoUpdates is returned when a profile update carries no fields.
	ErrNoUpdates = errors.New("no updates were made")
	// ErrWeakPassword is returned when a password fails the policy check.
	ErrWeakPassword = errors.New("password must be at least 8 characters long and include letters, numbers, and special characters")
	// ErrMissingFields is returned when required input fields are absent.
	ErrMissingFields = errors.New("please provide all required information")
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound is returned when an answer is not found.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrNotOwner is returned when a caller acts on a resource it does not own.
	ErrNotOwner = errors.New("you do not have permission to modify this resource")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Msg  string `json:"msg"`
	Code string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Msg:  e.Message,
		Code: e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unclassified errors
// collapse to a generic 500 so storage internals never reach the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrPasswordFieldsRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_FIELDS_REQUIRED")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrCurrentPasswordWrong):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CURRENT_PASSWORD_WRONG")
	case errors.Is(err, ErrNoUpdates):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_UPDATES")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrQuestionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "QUESTION_NOT_FOUND")
	case errors.Is(err, ErrAnswerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ANSWER_NOT_FOUND")
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "something went wrong. Try again.", "INTERNAL_ERROR")
	}
}
