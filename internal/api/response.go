package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsreader/internal/domain"
	"newsreader/internal/service"
)

// Response is the envelope of every API reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Error: message})
}

// failWith maps err onto a status code and a user-facing message.
func failWith(c *gin.Context, err error) {
	fail(c, statusFor(err), service.UserMessage(err))
}

func statusFor(err error) int {
	var remoteErr *domain.RemoteError
	switch {
	case errors.Is(err, domain.ErrInvalidArticle), errors.Is(err, domain.ErrInvalidComment):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDownloadInProgress), errors.Is(err, domain.ErrNoActiveDownload):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &remoteErr):
		if remoteErr.StatusCode == http.StatusUnauthorized || remoteErr.StatusCode == http.StatusForbidden {
			return remoteErr.StatusCode
		}
		if errors.Is(err, domain.ErrNetworkUnavailable) {
			return http.StatusServiceUnavailable
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
