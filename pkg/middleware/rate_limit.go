package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soko/pkg/ratelimit"
	"soko/pkg/utils"
)

// RateLimit throttles by client IP. The limiter fails closed, so losing redis
// rejects traffic rather than letting it flood through.
func RateLimit(limiter *ratelimit.FixedWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			abortWith(c, utils.NewAppError(http.StatusTooManyRequests,
				"Too many requests from this IP, please try again in an hour!"))
			return
		}
		c.Next()
	}
}
