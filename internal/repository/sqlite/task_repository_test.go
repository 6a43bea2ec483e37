package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/apperr"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

func seedTask(t *testing.T, tasks repository.TaskRepository, id, title, description, userID string, status domain.TaskStatus) {
	t.Helper()
	require.NoError(t, tasks.Create(context.Background(), &domain.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		UserID:      userID,
	}))
}

func TestTaskGetScopedByOwner(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Title", "Desc", "user-a", domain.TaskStatusOpen)

	task, err := tasks.Get(ctx, "t1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Title", task.Title)
	assert.Equal(t, "user-a", task.UserID)

	_, err = tasks.Get(ctx, "t1", "user-b")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.EqualError(t, err, "Task with id: t1 not found")
}

func TestTaskListFilters(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "T1 FT1", "", "user-a", domain.TaskStatusOpen)
	seedTask(t, tasks, "t2", "T2 FC", "", "user-a", domain.TaskStatusInProgress)
	seedTask(t, tasks, "t3", "Other FC", "", "user-b", domain.TaskStatusOpen)

	// no filters: all of owner's tasks in insertion order
	all, err := tasks.List(ctx, "user-a", repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)

	// search only
	found, err := tasks.List(ctx, "user-a", repository.TaskFilter{Search: "FC"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "t2", found[0].ID)

	found, err = tasks.List(ctx, "user-a", repository.TaskFilter{Search: "FT1"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "t1", found[0].ID)

	// status only
	found, err = tasks.List(ctx, "user-a", repository.TaskFilter{Status: domain.TaskStatusDone})
	require.NoError(t, err)
	assert.Empty(t, found)

	// both combine with AND
	found, err = tasks.List(ctx, "user-a", repository.TaskFilter{Status: domain.TaskStatusInProgress, Search: "FC"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "t2", found[0].ID)

	found, err = tasks.List(ctx, "user-a", repository.TaskFilter{Status: domain.TaskStatusOpen, Search: "FC"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestTaskSearchMatchesDescription(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Plain", "needle in here", "user-a", domain.TaskStatusOpen)

	found, err := tasks.List(ctx, "user-a", repository.TaskFilter{Search: "needle"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "t1", found[0].ID)
}

func TestTaskUpdateMerge(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Old title", "Old desc", "user-a", domain.TaskStatusOpen)

	task, err := tasks.Update(ctx, "t1", "user-a", repository.TaskUpdate{Description: "X"})
	require.NoError(t, err)
	assert.Equal(t, "Old title", task.Title)
	assert.Equal(t, "X", task.Description)

	task, err = tasks.Update(ctx, "t1", "user-a", repository.TaskUpdate{Title: "New title"})
	require.NoError(t, err)
	assert.Equal(t, "New title", task.Title)
	assert.Equal(t, "X", task.Description)

	_, err = tasks.Update(ctx, "missing", "user-a", repository.TaskUpdate{Title: "x"})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTaskUpdateStatusStampsDates(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Title", "", "user-a", domain.TaskStatusOpen)

	task, err := tasks.UpdateStatus(ctx, "t1", "user-a", domain.TaskStatusInProgress, "2026-08-31", "")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	assert.Equal(t, "2026-08-31", task.BeginDate)
	assert.Empty(t, task.EndDate)

	task, err = tasks.UpdateStatus(ctx, "t1", "user-a", domain.TaskStatusDone, "", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, task.Status)
	assert.Equal(t, "2026-08-31", task.BeginDate)
	assert.Equal(t, "2026-09-01", task.EndDate)
}

func TestTaskProjectAssociation(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Title", "", "user-a", domain.TaskStatusOpen)

	task, err := tasks.SetProject(ctx, "t1", "user-a", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", task.ProjectID)

	byProject, err := tasks.ListByProject(ctx, "p1", "user-a")
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	// a different owner sees nothing
	byProject, err = tasks.ListByProject(ctx, "p1", "user-b")
	require.NoError(t, err)
	assert.Empty(t, byProject)

	task, err = tasks.ClearProject(ctx, "t1", "user-a")
	require.NoError(t, err)
	assert.Empty(t, task.ProjectID)
}

func TestTaskDelete(t *testing.T) {
	_, _, tasks, _ := newTestDB(t)
	ctx := context.Background()

	seedTask(t, tasks, "t1", "Title", "", "user-a", domain.TaskStatusOpen)

	// not deletable by another user
	err := tasks.Delete(ctx, "t1", "user-b")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, tasks.Delete(ctx, "t1", "user-a"))

	err = tasks.Delete(ctx, "t1", "user-a")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
