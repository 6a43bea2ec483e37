package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/apperr"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	if err := h.users.SignUp(c.Request.Context(), req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) signIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	token, err := h.users.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.users.DeleteUser(c.Request.Context(), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
