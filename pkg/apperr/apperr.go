// Package apperr holds the error kinds shared by all services and their HTTP
// status mapping. Use cases wrap a sentinel with %w; anything that does not
// wrap one is treated as an internal fault.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func IsInternal(err error) bool {
	return Status(err) == http.StatusInternalServerError
}

// New wraps kind with a user-facing message that errors.Is still matches.
func New(kind error, message string) error {
	return &appError{kind: kind, message: message}
}

type appError struct {
	kind    error
	message string
}

func (e *appError) Error() string { return e.message }
func (e *appError) Unwrap() error { return e.kind }

// Message returns the text safe to show to a client. Internal faults get
// fallback instead of their cause.
func Message(err error, fallback string) string {
	if IsInternal(err) {
		return fallback
	}
	var ae *appError
	if errors.As(err, &ae) {
		return ae.message
	}
	return err.Error()
}

// Respond writes the standard failure envelope for err.
func Respond(c *gin.Context, err error, fallback string) {
	c.JSON(Status(err), gin.H{"success": false, "message": Message(err, fallback)})
}
