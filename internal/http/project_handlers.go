package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
)

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), req.Title, req.Description, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, projectToResponse(*project))
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.projects.GetProjects(c.Request.Context(), c.Query("search"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.projects.GetProjectByID(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) updateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), c.Param("id"), req.Title, req.Description, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.projects.DeleteProjectByID(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) deleteAllProjects(c *gin.Context) {
	if err := h.projects.DeleteAllProjects(c.Request.Context(), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func projectsToResponse(projects []domain.Project) []ProjectResponse {
	resp := make([]ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = projectToResponse(projects[i])
	}
	return resp
}
