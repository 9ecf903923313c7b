package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every non-2xx JSON body uses. Status
// stays out of the body; the HTTP status line already carries it.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError writes the envelope and records the original error on
// the gin context so the error middleware and request log can see it.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
