package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/imoveisxml/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a JSON response
// when the handler chain has not written one yet.
//
// A dto.ErrorResponse attached as the last error is sent as-is with
// status 500 unless the handler already chose a status; any other error
// is wrapped in a generic "internal server error" body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	last := c.Errors.Last().Err
	if resp, ok := last.(dto.ErrorResponse); ok {
		c.JSON(status, resp)
		return
	}
	c.JSON(status, dto.NewErrorResponse("internal server error", last))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse.
//
// Parameters:
//   - c: request context.
//   - status: HTTP status code to send.
//   - message: client-facing message.
//   - err: optional cause; recorded on the context and sent as error_details.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
