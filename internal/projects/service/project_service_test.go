package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/store"
	"github.com/GoSim-25-26J-441/project-board/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*ProjectService, *store.ProjectStore) {
	t.Helper()
	s := store.New()
	return NewProjectService(s, validation.DefaultBounds), s
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates project with trimmed input", func(t *testing.T) {
		svc, _ := setupService(t)

		p, err := svc.Create(ctx, domain.CreateProjectRequest{
			Title:       "  Build API  ",
			Description: "Design and implement REST API",
			People:      3,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Build API", p.Title)
		assert.Equal(t, domain.StatusActive, p.Status)
	})

	t.Run("rejects invalid input without touching the store", func(t *testing.T) {
		svc, s := setupService(t)
		notified := 0
		s.Subscribe(func([]domain.Project) { notified++ })

		_, err := svc.Create(ctx, domain.CreateProjectRequest{
			Title:       "API",
			Description: "Design and implement REST API",
			People:      3,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, notified)
	})
}

func TestProjectService_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("moves project", func(t *testing.T) {
		svc, _ := setupService(t)
		p, err := svc.Create(ctx, domain.CreateProjectRequest{Title: "Build API", Description: "Design and implement REST API", People: 3})
		require.NoError(t, err)

		moved, err := svc.Move(ctx, p.ID, domain.StatusFinished)
		require.NoError(t, err)
		assert.True(t, moved)

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFinished, got.Status)
	})

	t.Run("unchanged status reports false", func(t *testing.T) {
		svc, _ := setupService(t)
		p, err := svc.Create(ctx, domain.CreateProjectRequest{Title: "Build API", Description: "Design and implement REST API", People: 3})
		require.NoError(t, err)

		moved, err := svc.Move(ctx, p.ID, domain.StatusActive)
		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Move(ctx, "missing", domain.StatusFinished)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Move(ctx, "missing", domain.Status("archived"))
		assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
	})
}

func TestProjectService_ListAndBoard(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	a, err := svc.Create(ctx, domain.CreateProjectRequest{Title: "Build API", Description: "Design and implement REST API", People: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateProjectRequest{Title: "Write docs", Description: "Document the API", People: 2})
	require.NoError(t, err)
	_, err = svc.Move(ctx, a.ID, domain.StatusFinished)
	require.NoError(t, err)

	assert.Len(t, svc.List(ctx, nil), 2)

	finished := domain.StatusFinished
	list := svc.List(ctx, &finished)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	board := svc.Board(ctx)
	assert.Len(t, board.Active.Items, 1)
	assert.Len(t, board.Finished.Items, 1)
	assert.Equal(t, "Write docs", board.Active.Items[0].Title)
}
