package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// TaskService owns task creation, partial update, status transitions and
// project association rules. Every operation is scoped to the calling user.
type TaskService interface {
	CreateTask(ctx context.Context, title, description, projectID string, user *domain.User) (*domain.Task, error)
	GetTaskByID(ctx context.Context, id string, user *domain.User) (*domain.Task, error)
	GetTasks(ctx context.Context, filter repository.TaskFilter, user *domain.User) ([]domain.Task, error)
	GetTasksByProjectID(ctx context.Context, projectID string, user *domain.User) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id, title, description string, user *domain.User) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string, user *domain.User) (*domain.Task, error)
	AddProjectToTask(ctx context.Context, id, projectID string, user *domain.User) (*domain.Task, error)
	DeleteProjectFromTask(ctx context.Context, id string, user *domain.User) (*domain.Task, error)
	DeleteProjectFromTasks(ctx context.Context, projectID string, user *domain.User) error
	DeleteTaskByID(ctx context.Context, id string, user *domain.User) error
	DeleteTasksByProjectID(ctx context.Context, projectID string, user *domain.User) error
	DeleteAllTasks(ctx context.Context, user *domain.User) error
}

type taskService struct {
	tasks  repository.TaskRepository
	logger *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, logger *logrus.Logger) TaskService {
	return &taskService{
		tasks:  tasks,
		logger: logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, title, description, projectID string, user *domain.User) (*domain.Task, error) {
	if title == "" {
		return nil, apperr.Validation("title should not be empty")
	}

	// projectID is accepted as-is; the association is deliberately not
	// checked against existing projects.
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusOpen,
		UserID:      user.ID,
		ProjectID:   projectID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id string, user *domain.User) (*domain.Task, error) {
	return s.tasks.Get(ctx, id, user.ID)
}

func (s *taskService) GetTasks(ctx context.Context, filter repository.TaskFilter, user *domain.User) ([]domain.Task, error) {
	return s.tasks.List(ctx, user.ID, filter)
}

func (s *taskService) GetTasksByProjectID(ctx context.Context, projectID string, user *domain.User) ([]domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID, user.ID)
}

// UpdateTask applies merge semantics: a field is written only when present
// and non-empty; an empty string means "leave as is", never "clear".
func (s *taskService) UpdateTask(ctx context.Context, id, title, description string, user *domain.User) (*domain.Task, error) {
	if title == "" && description == "" {
		return nil, apperr.Validation("Empty title and description")
	}

	s.logger.Debugf("user with id: %s updates task with id: %s", user.ID, id)

	return s.tasks.Update(ctx, id, user.ID, repository.TaskUpdate{
		Title:       title,
		Description: description,
	})
}

// UpdateTaskStatus sets the task status. OPEN->IN_PROGRESS stamps beginDate
// and IN_PROGRESS->DONE stamps endDate with the current date, each only if
// not already set; every other edge is a bare status write.
func (s *taskService) UpdateTaskStatus(ctx context.Context, id, status string, user *domain.User) (*domain.Task, error) {
	normalized, ok := domain.ParseTaskStatus(status)
	if !ok {
		return nil, apperr.Validationf("%s is invalid status", string(normalized))
	}

	task, err := s.tasks.Get(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(domain.DateOnly)
	var beginDate, endDate string
	if task.Status == domain.TaskStatusOpen && normalized == domain.TaskStatusInProgress && task.BeginDate == "" {
		beginDate = today
	}
	if task.Status == domain.TaskStatusInProgress && normalized == domain.TaskStatusDone && task.EndDate == "" {
		endDate = today
	}

	return s.tasks.UpdateStatus(ctx, id, user.ID, normalized, beginDate, endDate)
}

func (s *taskService) AddProjectToTask(ctx context.Context, id, projectID string, user *domain.User) (*domain.Task, error) {
	if projectID == "" {
		return nil, apperr.Validation("Bad projectId")
	}

	s.logger.Debugf("user with id: %s puts projectId: %s to task: %s", user.ID, projectID, id)

	return s.tasks.SetProject(ctx, id, user.ID, projectID)
}

func (s *taskService) DeleteProjectFromTask(ctx context.Context, id string, user *domain.User) (*domain.Task, error) {
	s.logger.Debugf("user with id: %s removes projectId from task: %s", user.ID, id)

	return s.tasks.ClearProject(ctx, id, user.ID)
}

// DeleteProjectFromTasks clears the association on every owned task of the
// project, one task at a time, stopping at the first failure.
func (s *taskService) DeleteProjectFromTasks(ctx context.Context, projectID string, user *domain.User) error {
	tasks, err := s.tasks.ListByProject(ctx, projectID, user.ID)
	if err != nil {
		return err
	}
	for i := range tasks {
		if _, err := s.tasks.ClearProject(ctx, tasks[i].ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *taskService) DeleteTaskByID(ctx context.Context, id string, user *domain.User) error {
	if err := s.tasks.Delete(ctx, id, user.ID); err != nil {
		return err
	}
	s.logger.Debugf("user with id: %s deleted task with id: %s", user.ID, id)
	return nil
}

func (s *taskService) DeleteTasksByProjectID(ctx context.Context, projectID string, user *domain.User) error {
	tasks, err := s.tasks.ListByProject(ctx, projectID, user.ID)
	if err != nil {
		return err
	}
	for i := range tasks {
		if err := s.tasks.Delete(ctx, tasks[i].ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAllTasks removes every owned task sequentially. An empty set is a
// successful no-op, so calling it twice in a row never fails.
func (s *taskService) DeleteAllTasks(ctx context.Context, user *domain.User) error {
	tasks, err := s.tasks.List(ctx, user.ID, repository.TaskFilter{})
	if err != nil {
		return err
	}
	for i := range tasks {
		if err := s.tasks.Delete(ctx, tasks[i].ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}
