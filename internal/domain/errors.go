package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationReason distinguishes the two client-side validation failures.
type ValidationReason int

const (
	ReasonMissingFields ValidationReason = iota + 1
	ReasonInvalidEmail
)

// ValidationError blocks a submission before any network call is made.
type ValidationError struct {
	Reason ValidationReason
	Fields []string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMissingFields:
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	case ReasonInvalidEmail:
		return "invalid email address"
	default:
		return "invalid employee"
	}
}

// NotFoundError reports that the backend no longer knows the id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", e.ID)
}

// NetworkError covers transport failures and every unexpected HTTP status.
// StatusCode is zero when the request never got a response.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": network error"
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
