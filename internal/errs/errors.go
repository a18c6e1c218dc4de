// Package errs holds the typed error taxonomy shared by services and handlers.
// Every root error carries the HTTP status it maps to, so handlers only need
// merry.HTTPCode to build the response.
package errs

import (
	"net/http"

	"github.com/ansel1/merry"
)

var (
	ErrValidation      = merry.New("validation error").WithHTTPCode(http.StatusBadRequest)
	ErrReference       = merry.New("reference error").WithHTTPCode(http.StatusBadRequest)
	ErrNotFound        = merry.New("not found").WithHTTPCode(http.StatusNotFound)
	ErrAuthorization   = merry.New("forbidden").WithHTTPCode(http.StatusForbidden)
	ErrAuthentication  = merry.New("unauthenticated").WithHTTPCode(http.StatusUnauthorized)
	ErrTooManyRequests = merry.New("too many requests").WithHTTPCode(http.StatusTooManyRequests)
)

type fieldErrorsKey struct{}

// FieldErrors maps a request field to its messages
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func Validation(msg string) error {
	return ErrValidation.Here().WithMessage(msg)
}

// ValidationFields reports per-field problems; msg is the envelope message.
func ValidationFields(msg string, fields FieldErrors) error {
	return ErrValidation.Here().WithMessage(msg).WithValue(fieldErrorsKey{}, fields)
}

// Reference is returned when a mandatory code does not resolve to an entity.
func Reference(field, msg string) error {
	return ErrReference.Here().
		WithMessage(msg).
		WithValue(fieldErrorsKey{}, FieldErrors{field: {msg}})
}

// ReferenceFields reports several unresolved codes at once.
func ReferenceFields(msg string, fields FieldErrors) error {
	return ErrReference.Here().WithMessage(msg).WithValue(fieldErrorsKey{}, fields)
}

func NotFound(msg string) error {
	return ErrNotFound.Here().WithMessage(msg)
}

func Authorization(msg string) error {
	return ErrAuthorization.Here().WithMessage(msg)
}

func Authentication(msg string) error {
	return ErrAuthentication.Here().WithMessage(msg)
}

func TooManyRequests(msg string) error {
	return ErrTooManyRequests.Here().WithMessage(msg)
}

// Fields returns the field errors attached to err, if any.
func Fields(err error) FieldErrors {
	if v, ok := merry.Value(err, fieldErrorsKey{}).(FieldErrors); ok {
		return v
	}
	return nil
}

// HTTPStatus maps err to a response code; untyped errors are 500.
func HTTPStatus(err error) int {
	return merry.HTTPCode(err)
}

// IsTyped reports whether err belongs to the taxonomy above.
func IsTyped(err error) bool {
	return merry.Is(err, ErrValidation, ErrReference, ErrNotFound,
		ErrAuthorization, ErrAuthentication, ErrTooManyRequests)
}

func IsValidation(err error) bool { return merry.Is(err, ErrValidation) }
func IsReference(err error) bool  { return merry.Is(err, ErrReference) }
func IsNotFound(err error) bool   { return merry.Is(err, ErrNotFound) }

// Message is the user-facing text of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if m := merry.Message(err); m != "" {
		return m
	}
	return err.Error()
}
