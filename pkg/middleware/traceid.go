package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDMiddleware tags every request with a fresh trace id. The id travels
// back on the X-Trace-ID header and is echoed inside every JSON envelope, so
// a client report can be matched to server logs.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("trace_id", id)
		c.Header("X-Trace-ID", id)
		c.Next()
	}
}
