package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

// BodyLimit caps request bodies at maxBytes. A declared length above the cap
// is rejected with 413 before the handler runs. Undeclared bodies are cut off
// while reading and the handler's bind step answers 413.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.TooLarge(c)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
