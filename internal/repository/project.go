package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// ProjectUpdate mirrors TaskUpdate for project merge updates.
type ProjectUpdate struct {
	Title       string
	Description string
}

// ProjectRepository exposes persistence operations for Project aggregates,
// scoped by owning user id like TaskRepository.
type ProjectRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, project *domain.Project) error
	Get(ctx context.Context, id, userID string) (*domain.Project, error)
	List(ctx context.Context, userID, search string) ([]domain.Project, error)
	Update(ctx context.Context, id, userID string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
}
