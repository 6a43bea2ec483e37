package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/apperr"
)

// ErrorResponse is the structured error body returned for every failure.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

var kindStatusMap = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindConflict:     http.StatusConflict,
}

// writeError maps err onto the error taxonomy and writes the structured body.
// Errors outside the taxonomy are reported as an opaque 500; the underlying
// message never reaches the caller.
func writeError(c *gin.Context, err error) {
	status, ok := kindStatusMap[apperr.KindOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}
