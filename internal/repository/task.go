package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// TaskFilter restricts task listings. Zero values mean "no restriction";
// Status and Search combine with AND, Search matches title or description
// as an unanchored substring.
type TaskFilter struct {
	Status domain.TaskStatus
	Search string
}

// TaskUpdate carries the merge-update fields. Empty strings mean "leave the
// stored value untouched", never "clear the field".
type TaskUpdate struct {
	Title       string
	Description string
}

// TaskRepository exposes persistence operations for Task aggregates. Every
// read and mutation is scoped by the owning user id; a row owned by a
// different user behaves exactly like a missing one.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id, userID string) (*domain.Task, error)
	List(ctx context.Context, userID string, filter TaskFilter) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID, userID string) ([]domain.Task, error)
	Update(ctx context.Context, id, userID string, update TaskUpdate) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id, userID string, status domain.TaskStatus, beginDate, endDate string) (*domain.Task, error)
	SetProject(ctx context.Context, id, userID, projectID string) (*domain.Task, error)
	ClearProject(ctx context.Context, id, userID string) (*domain.Task, error)
	Delete(ctx context.Context, id, userID string) error
}
