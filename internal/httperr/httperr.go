package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Upstream relays a store or function failure message verbatim, the
// way every non-dashboard view reports it. Function endpoints keep
// their own status code; everything else maps to 502.
func Upstream(c *gin.Context, code string, err error) {
	if re, ok := AsRemote(err); ok && re.Status >= 400 {
		Write(c, re.Status, code, re.Body)
		return
	}
	Write(c, http.StatusBadGateway, code, err.Error())
}
