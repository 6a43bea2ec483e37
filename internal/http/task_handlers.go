package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"projectId"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

type taskProjectRequest struct {
	ProjectID string `json:"projectId"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), req.Title, req.Description, req.ProjectID, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) listTasks(c *gin.Context) {
	filter := repository.TaskFilter{Search: c.Query("search")}
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseTaskStatus(raw)
		if !ok {
			writeError(c, apperr.Validationf("%s is invalid status", string(status)))
			return
		}
		filter.Status = status
	}

	tasks, err := h.tasks.GetTasks(c.Request.Context(), filter, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (h *Handler) getTask(c *gin.Context) {
	task, err := h.tasks.GetTaskByID(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), req.Title, req.Description, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) updateTaskStatus(c *gin.Context) {
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.UpdateTaskStatus(c.Request.Context(), c.Param("id"), req.Status, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) addProjectToTask(c *gin.Context) {
	var req taskProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.tasks.AddProjectToTask(c.Request.Context(), c.Param("id"), req.ProjectID, currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteProjectFromTask(c *gin.Context) {
	task, err := h.tasks.DeleteProjectFromTask(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

// listTasksByProject serves GET /tasks/:id/project where :id is a project id.
func (h *Handler) listTasksByProject(c *gin.Context) {
	tasks, err := h.tasks.GetTasksByProjectID(c.Request.Context(), c.Param("id"), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (h *Handler) deleteTask(c *gin.Context) {
	if err := h.tasks.DeleteTaskByID(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) deleteAllTasks(c *gin.Context) {
	if err := h.tasks.DeleteAllTasks(c.Request.Context(), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) deleteTasksByProject(c *gin.Context) {
	if err := h.tasks.DeleteTasksByProjectID(c.Request.Context(), c.Param("projectId"), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) deleteProjectFromTasks(c *gin.Context) {
	if err := h.tasks.DeleteProjectFromTasks(c.Request.Context(), c.Param("projectId"), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	return resp
}
