package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// ProjectService mirrors the task lifecycle contract for projects, without
// status or date fields.
type ProjectService interface {
	CreateProject(ctx context.Context, title, description string, user *domain.User) (*domain.Project, error)
	GetProjectByID(ctx context.Context, id string, user *domain.User) (*domain.Project, error)
	GetProjects(ctx context.Context, search string, user *domain.User) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id, title, description string, user *domain.User) (*domain.Project, error)
	DeleteProjectByID(ctx context.Context, id string, user *domain.User) error
	DeleteAllProjects(ctx context.Context, user *domain.User) error
}

type projectService struct {
	projects repository.ProjectRepository
	logger   *logrus.Logger
}

func NewProjectService(projects repository.ProjectRepository, logger *logrus.Logger) ProjectService {
	return &projectService{
		projects: projects,
		logger:   logger,
	}
}

func (s *projectService) CreateProject(ctx context.Context, title, description string, user *domain.User) (*domain.Project, error) {
	if title == "" {
		return nil, apperr.Validation("title should not be empty")
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		UserID:      user.ID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id string, user *domain.User) (*domain.Project, error) {
	return s.projects.Get(ctx, id, user.ID)
}

func (s *projectService) GetProjects(ctx context.Context, search string, user *domain.User) ([]domain.Project, error) {
	return s.projects.List(ctx, user.ID, search)
}

func (s *projectService) UpdateProject(ctx context.Context, id, title, description string, user *domain.User) (*domain.Project, error) {
	if title == "" && description == "" {
		return nil, apperr.Validation("Empty title and description")
	}

	s.logger.Debugf("user with id: %s updates project with id: %s", user.ID, id)

	return s.projects.Update(ctx, id, user.ID, repository.ProjectUpdate{
		Title:       title,
		Description: description,
	})
}

func (s *projectService) DeleteProjectByID(ctx context.Context, id string, user *domain.User) error {
	if err := s.projects.Delete(ctx, id, user.ID); err != nil {
		return err
	}
	s.logger.Debugf("user with id: %s deleted project with id: %s", user.ID, id)
	return nil
}

// DeleteAllProjects removes every owned project sequentially, stopping at the
// first failure. Tasks referencing a deleted project keep their association.
func (s *projectService) DeleteAllProjects(ctx context.Context, user *domain.User) error {
	projects, err := s.projects.List(ctx, user.ID, "")
	if err != nil {
		return err
	}
	for i := range projects {
		if err := s.projects.Delete(ctx, projects[i].ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}
