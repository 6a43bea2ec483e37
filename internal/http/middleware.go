package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
)

const userContextKey = "user"

// authRequired resolves the bearer token to a stored user before any business
// logic runs. A missing, malformed, expired or unresolvable token is a 401.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			writeError(c, apperr.Unauthorized("Authorization header required"))
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(c, apperr.Unauthorized("Invalid token format"))
			return
		}

		username, err := h.verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(c, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		user, err := h.users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			writeError(c, apperr.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
