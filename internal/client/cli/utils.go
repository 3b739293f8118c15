package cli

import (
	"errors"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
)

// describe renders an error for the terminal, preferring the backend's
// human-readable message over Go error chains.
func describe(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
