package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Envelope sends 200 JSON with body as is, without the Resp wrapper.
func Envelope(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// InternalError aborts with 500 and the generic error body. err is never
// exposed to the caller.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Error: DefaultErrorMessage})
}
