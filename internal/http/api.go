package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/domain"
	"task-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	tasks    service.TaskService
	projects service.ProjectService
	verifier TokenVerifier
}

// TokenVerifier resolves a bearer token string to the username it carries.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

func NewHandler(users service.UserService, tasks service.TaskService, projects service.ProjectService, verifier TokenVerifier) *Handler {
	return &Handler{
		users:    users,
		tasks:    tasks,
		projects: projects,
		verifier: verifier,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/signin", h.signIn)
		auth.DELETE("/delete/user", h.authRequired(), h.deleteUser)
	}

	tasks := router.Group("/tasks", h.authRequired())
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.GET("/:id", h.getTask)
		tasks.PATCH("/:id", h.updateTask)
		tasks.PATCH("/:id/status", h.updateTaskStatus)
		tasks.PUT("/:id/project", h.addProjectToTask)
		tasks.DELETE("/:id/project", h.deleteProjectFromTask)
		tasks.GET("/:id/project", h.listTasksByProject)
		tasks.DELETE("/:id", h.deleteTask)
		tasks.DELETE("/all", h.deleteAllTasks)
		tasks.DELETE("/by_project/:projectId", h.deleteTasksByProject)
		tasks.DELETE("/project_from_tasks/:projectId", h.deleteProjectFromTasks)
	}

	projects := router.Group("/projects", h.authRequired())
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
		projects.GET("/:id", h.getProject)
		projects.PATCH("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.DELETE("/all", h.deleteAllProjects)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// TaskResponse is the wire shape of a task. The persistence-internal row
// identifier never appears here, only the domain id.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	UserID      string            `json:"userId"`
	ProjectID   string            `json:"projectId,omitempty"`
	BeginDate   string            `json:"beginDate,omitempty"`
	EndDate     string            `json:"endDate,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
		ProjectID:   task.ProjectID,
		BeginDate:   task.BeginDate,
		EndDate:     task.EndDate,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func projectToResponse(project domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		UserID:      project.UserID,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}
