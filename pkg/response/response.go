package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "session-todo/pkg/errors"
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

// Error sends an error envelope. An *errors.HTTPError in the chain decides
// the status; anything else is reported as 400.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}

// Text sends a plain-text body, used for XHR callers that only need a path.
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SeeOther redirects with 303 so a POST is followed by a GET.
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
