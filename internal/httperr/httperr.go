package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func AbortWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func Validation(c *gin.Context, v *ValidationError) {
	c.JSON(http.StatusBadRequest, v.Fields)
}

// Respond converts an error returned by a use case or repository into the
// matching status and body. Unknown errors are logged and reported as 500.
func Respond(c *gin.Context, err error) {
	var (
		nf   *NotFoundError
		v    *ValidationError
		auth *AuthenticationError
	)

	switch {
	case errors.As(err, &v):
		Validation(c, v)
	case errors.As(err, &nf):
		NotFound(c, nf.Error())
	case errors.Is(err, ErrPermissionDenied):
		Forbidden(c, ErrPermissionDenied.Error())
	case errors.As(err, &auth):
		Unauthorized(c, auth.Message)
	case errors.Is(err, ErrInvalidToken):
		Unauthorized(c, ErrInvalidToken.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, "internal_error")
	}
}
