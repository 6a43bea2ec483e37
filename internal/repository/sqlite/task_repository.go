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

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	user_id TEXT NOT NULL,
	project_id TEXT NOT NULL DEFAULT '',
	begin_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);
CREATE INDEX IF NOT EXISTS idx_tasks_user_project ON tasks(user_id, project_id);
`

var taskColumns = []string{
	"id", "title", "description", "status", "user_id",
	"project_id", "begin_date", "end_date", "created_at", "updated_at",
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query, args, err := sq.Insert("tasks").
		Columns(taskColumns...).
		Values(
			task.ID,
			task.Title,
			task.Description,
			string(task.Status),
			task.UserID,
			task.ProjectID,
			task.BeginDate,
			task.EndDate,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert task: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select task: %w", err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("Task with id: %s not found", id)
		}
		return nil, err
	}
	return task, nil
}

// List returns the owner's tasks restricted by the filter: status equality
// and unanchored substring match on title or description, AND-combined.
// Results come back in insertion order.
func (r *TaskRepository) List(ctx context.Context, userID string, filter repository.TaskFilter) ([]domain.Task, error) {
	pred := sq.And{sq.Eq{"user_id": userID}}
	if filter.Status != "" {
		pred = append(pred, sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		pred = append(pred, sq.Or{
			sq.Like{"title": like},
			sq.Like{"description": like},
		})
	}

	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(pred).
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	return r.queryTasks(ctx, query, args...)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID, userID string) ([]domain.Task, error) {
	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID, "project_id": projectID}).
		OrderBy("rowid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks by project: %w", err)
	}

	return r.queryTasks(ctx, query, args...)
}

func (r *TaskRepository) Update(ctx context.Context, id, userID string, update repository.TaskUpdate) (*domain.Task, error) {
	builder := sq.Update("tasks")
	if update.Title != "" {
		builder = builder.Set("title", update.Title)
	}
	if update.Description != "" {
		builder = builder.Set("description", update.Description)
	}
	return r.applyUpdate(ctx, id, userID, builder)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id, userID string, status domain.TaskStatus, beginDate, endDate string) (*domain.Task, error) {
	builder := sq.Update("tasks").Set("status", string(status))
	if beginDate != "" {
		builder = builder.Set("begin_date", beginDate)
	}
	if endDate != "" {
		builder = builder.Set("end_date", endDate)
	}
	return r.applyUpdate(ctx, id, userID, builder)
}

func (r *TaskRepository) SetProject(ctx context.Context, id, userID, projectID string) (*domain.Task, error) {
	return r.applyUpdate(ctx, id, userID, sq.Update("tasks").Set("project_id", projectID))
}

func (r *TaskRepository) ClearProject(ctx context.Context, id, userID string) (*domain.Task, error) {
	return r.applyUpdate(ctx, id, userID, sq.Update("tasks").Set("project_id", ""))
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task delete rows affected: %w", err)
	}
	if aff == 0 {
		return apperr.NotFoundf("Task with id: %s not found", id)
	}
	return nil
}

// applyUpdate finishes a partially built UPDATE with the ownership predicate,
// executes it and returns the updated row. Zero rows affected means the task
// does not exist for this owner.
func (r *TaskRepository) applyUpdate(ctx context.Context, id, userID string, builder sq.UpdateBuilder) (*domain.Task, error) {
	query, args, err := builder.
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("task update rows affected: %w", err)
	}
	if aff == 0 {
		return nil, apperr.NotFoundf("Task with id: %s not found", id)
	}

	return r.Get(ctx, id, userID)
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var (
		task   domain.Task
		status string
	)
	if err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&status,
		&task.UserID,
		&task.ProjectID,
		&task.BeginDate,
		&task.EndDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	task.Status = domain.TaskStatus(status)
	return &task, nil
}
