package chronocode

import (
	"errors"
	"net/http"
)

const (
	unknownErrorMessage  = "Unknown error"
	requestFailedMessage = "Request failed"
)

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (x *APIError) Error() string {
	return x.Message
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}
