package utils

import (
	"context"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

// GetRequestIDFromContext returns the request id attached by the
// request-id middleware, or an empty string when none was set.
func GetRequestIDFromContext(c context.Context) string {
	id, _ := c.Value(RequestIDKey).(string)
	return id
}
