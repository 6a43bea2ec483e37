package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"task-tracker/internal/repository"
)

func newTestDB(t *testing.T) (*sql.DB, repository.UserRepository, repository.TaskRepository, repository.ProjectRepository) {
	t.Helper()

	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	projects := NewProjectRepository(db)
	require.NoError(t, users.Init(ctx))
	require.NoError(t, tasks.Init(ctx))
	require.NoError(t, projects.Init(ctx))

	return db, users, tasks, projects
}
