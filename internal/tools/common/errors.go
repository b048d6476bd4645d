package common

import (
	"errors"

	"google.golang.org/api/googleapi"
)

// ErrorMessage returns a user-facing message for err. Google API errors are
// reduced to the message the service returned.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
