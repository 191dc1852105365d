package collection

import (
	"context"
	"testing"

	"bazaardirectory/internal/domain"
	"bazaardirectory/internal/ids"
	"bazaardirectory/internal/storage/jsonfile"

	"github.com/stretchr/testify/require"
)

func newEventRepo(t *testing.T) domain.EventRepository {
	t.Helper()
	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)
	return NewEventRepository(store, ids.New())
}

func TestEventRepository_Create_AssignsDistinctIDs(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		e := &domain.Event{Name: "market"}
		require.NoError(t, repo.Create(ctx, e))
		require.NotEmpty(t, e.ID)
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate id %q", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestEventRepository_List_EmptyAndOrdered(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)

	first := &domain.Event{Name: "spring market"}
	second := &domain.Event{Name: "night bazaar"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	events, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "spring market", events[0].Name)
	require.Equal(t, "night bazaar", events[1].Name)
}

func TestEventRepository_GetByID(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := &domain.Event{Name: "craft fair", Location: "town hall"}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Name, got.Name)
	require.Equal(t, e.Location, got.Location)

	_, err = repo.GetByID(ctx, "no-such-id")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_Update(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := &domain.Event{Name: "craft fair", Description: "old"}
	require.NoError(t, repo.Create(ctx, e))

	e.Description = "new"
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, "new", got.Description)

	missing := &domain.Event{ID: "no-such-id"}
	require.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)
}

func TestEventRepository_Delete(t *testing.T) {
	repo := newEventRepo(t)
	ctx := context.Background()

	e := &domain.Event{Name: "craft fair"}
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, repo.Delete(ctx, e.ID))
	_, err := repo.GetByID(ctx, e.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Second delete of the same id reports NotFound; delete is not
	// silently idempotent.
	require.ErrorIs(t, repo.Delete(ctx, e.ID), domain.ErrNotFound)
}
