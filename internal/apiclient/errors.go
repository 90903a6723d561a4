package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

// APIError carries the backend's status code and best-effort message. Every
// non-2xx response surfaces as one of these; callers never inspect a result
// field for failure.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Detail
}

var limitKeywords = []string{"limit", "quota", "subscription", "tariff", "plan"}

// IsLimitReached reports whether err looks like a quota/subscription limit
// rejection. Matching handlers offer a redirect to the tariffs panel instead
// of a plain dismiss.
func IsLimitReached(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	msg := strings.ToLower(apiErr.Detail)
	for _, kw := range limitKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
