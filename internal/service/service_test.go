package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/auth"
	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/sqlite"
)

type testEnv struct {
	users    UserService
	tasks    TaskService
	projects ProjectService

	userRepo    repository.UserRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, taskRepo.Init(ctx))
	require.NoError(t, projectRepo.Init(ctx))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tokens := auth.NewTokenService("test-secret", time.Minute)

	return &testEnv{
		users:       NewUserService(userRepo, tokens, logger),
		tasks:       NewTaskService(taskRepo, logger),
		projects:    NewProjectService(projectRepo, logger),
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

func (e *testEnv) signedUpUser(t *testing.T, username string) *domain.User {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.users.SignUp(ctx, username, "password123"))
	user, err := e.users.GetByUsername(ctx, username)
	require.NoError(t, err)
	return user
}
