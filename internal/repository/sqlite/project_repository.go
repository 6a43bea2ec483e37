package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	user_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id);
`

var projectColumns = []string{
	"id", "title", "description", "user_id", "created_at", "updated_at",
}

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProjectsTable); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query, args, err := sq.Insert("projects").
		Columns(projectColumns...).
		Values(
			project.ID,
			project.Title,
			project.Description,
			project.UserID,
			project.CreatedAt,
			project.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert project: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Get(ctx context.Context, id, userID string) (*domain.Project, error) {
	query, args, err := sq.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select project: %w", err)
	}

	project, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("Project with id: %s not found", id)
		}
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context, userID, search string) ([]domain.Project, error) {
	pred := sq.And{sq.Eq{"user_id": userID}}
	if search != "" {
		like := "%" + search + "%"
		pred = append(pred, sq.Or{
			sq.Like{"title": like},
			sq.Like{"description": like},
		})
	}

	query, args, err := sq.Select(projectColumns...).
		From("projects").
		Where(pred).
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, id, userID string, update repository.ProjectUpdate) (*domain.Project, error) {
	builder := sq.Update("projects")
	if update.Title != "" {
		builder = builder.Set("title", update.Title)
	}
	if update.Description != "" {
		builder = builder.Set("description", update.Description)
	}

	query, args, err := builder.
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update project: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("project update rows affected: %w", err)
	}
	if aff == 0 {
		return nil, apperr.NotFoundf("Project with id: %s not found", id)
	}

	return r.Get(ctx, id, userID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project delete rows affected: %w", err)
	}
	if aff == 0 {
		return apperr.NotFoundf("Project with id: %s not found", id)
	}
	return nil
}

func scanProject(scanner interface {
	Scan(dest ...any) error
}) (*domain.Project, error) {
	var project domain.Project
	if err := scanner.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.UserID,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &project, nil
}
