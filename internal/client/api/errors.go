package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gradient-edu/gradient-cli/internal/common"
)

// APIError is a non-2xx response from the backend. Detail holds the raw
// "detail" payload so callers can inspect the original structure; Message
// flattens it into something printable.
type APIError struct {
	StatusCode int
	Detail     json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message())
}

// Unwrap maps an auth-rejected response onto the shared sentinel, so callers
// can write errors.Is(err, common.ErrUnauthorized) without inspecting status
// codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	return nil
}

// Message renders the backend's detail payload as a single line. The backend
// reports errors in three shapes: a plain string, a list of field errors
// ({loc, msg}), or a map. Anything else is returned verbatim.
func (e *APIError) Message() string {
	if len(e.Detail) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}

	var fieldErrs []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &fieldErrs); err == nil && len(fieldErrs) > 0 {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			if loc := lastLoc(fe.Loc); loc != "" {
				parts = append(parts, loc+": "+fe.Msg)
			} else {
				parts = append(parts, fe.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	var m map[string]any
	if err := json.Unmarshal(e.Detail, &m); err == nil {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(m))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, m[k]))
		}
		return strings.Join(parts, "; ")
	}

	return string(e.Detail)
}

// lastLoc picks the most specific element of a field-error location path,
// skipping the leading "body"/"query" marker the backend prepends.
func lastLoc(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" && s != "query" && s != "path" {
			return s
		}
	}
	return ""
}
