package apperr

import (
	"errors"
	"net/http"
)

// Error carries the HTTP status a failure should surface as. Handlers and
// middleware respond exactly once with {"error": message} and stop.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrMissingFields     = &Error{Status: http.StatusBadRequest, Message: "Please fill all the inputs."}
	ErrEmailTaken        = &Error{Status: http.StatusConflict, Message: "User already exists."}
	ErrUserNotFound      = &Error{Status: http.StatusNotFound, Message: "User not found."}
	ErrIncorrectPassword = &Error{Status: http.StatusNotFound, Message: "Incorrect Password."}
	ErrNoToken           = &Error{Status: http.StatusUnauthorized, Message: "Not authorized, no token found."}
	ErrInvalidToken      = &Error{Status: http.StatusUnauthorized, Message: "Not authorized, token failed."}
	ErrAdminOnly         = &Error{Status: http.StatusForbidden, Message: "Not authorized as an admin."}
	ErrDeleteAdmin       = &Error{Status: http.StatusForbidden, Message: "Cannot delete admin user."}
	ErrInvalidUserData   = &Error{Status: http.StatusBadRequest, Message: "Invalid user data."}
)

func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
