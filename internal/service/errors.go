package service

import (
	"errors"

	"github.com/chucky-1/finfine/internal/api"
)

// UnknownErrorText replaces errors that carry no message meant for users.
const UnknownErrorText = "An unknown error occurred"

var ErrUnauthenticated = errors.New("session is not authenticated")

// FormError is a rejected form field, shown to the user as is.
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// ErrorText turns err into the text shown on a page: the server's message for API
// failures, the field message for form errors and a generic text otherwise.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, api.ErrMissingToken) {
		return "Authentication token not found"
	}
	return UnknownErrorText
}
