package middleware

import (
	"github.com/gin-gonic/gin"

	"soko/pkg/utils"
)

// ErrorHandler renders the first error a handler attached to the context.
// Handlers report failures with c.Error and return, nothing writes its own
// error body.
func ErrorHandler(verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		utils.RenderError(c, c.Errors[0].Err, verbose)
	}
}
