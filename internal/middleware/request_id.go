package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/magicvilla/villa-api/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Attach tags every request with an id, honoring one supplied by the
// caller, and echoes it on the response so log lines and responses can
// be correlated.
func (m *RequestIDMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(string(utils.RequestIDKey), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
