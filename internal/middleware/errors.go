package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fundledger-backend/internal/apperr"
	"github.com/yungbote/fundledger-backend/internal/logger"
)

// ErrorHandler is the single place errors become responses. Handlers attach
// errors with c.Error and return; this runs after the chain, classifies the
// last error, and writes the uniform envelope. Unclassified errors answer a
// generic 500 and are logged in full.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	mwLog := log.With("middleware", "ErrorHandler")
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if e := apperr.Classify(err); e != nil {
			c.JSON(e.Status, e.Envelope())
			return
		}

		mwLog.Error("Unhandled error", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, apperr.Envelope{
			Error: apperr.Payload{
				Type:    "INTERNAL_SERVER_ERROR",
				Message: "Unexpected error",
			},
		})
	}
}
