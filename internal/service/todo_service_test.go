package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/todoview"
)

// fakeTodoRepo keeps todos in a map, newest first on List like the
// postgres repo does.
type fakeTodoRepo struct {
	nextID int64
	items  map[int64]dom.Todo
	order  []int64
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{nextID: 1, items: make(map[int64]dom.Todo)}
}

func (f *fakeTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	t.ID = f.nextID
	f.nextID++
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	f.items[t.ID] = t
	f.order = append([]int64{t.ID}, f.order...)
	return t, nil
}

func (f *fakeTodoRepo) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (f *fakeTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	var out []dom.Todo
	for _, id := range f.order {
		if t := f.items[id]; t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) Update(ctx context.Context, userID, id int64, patch dom.Todo) (dom.Todo, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	patch.ID = t.ID
	patch.UserID = t.UserID
	patch.CreatedAt = t.CreatedAt
	patch.UpdatedAt = time.Now().UTC()
	f.items[id] = patch
	return patch, nil
}

func (f *fakeTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeTodoRepo) Search(ctx context.Context, userID int64, q string) ([]dom.Todo, error) {
	return f.List(ctx, userID)
}

func (f *fakeTodoRepo) DueWithin(ctx context.Context, userID int64, window time.Duration) ([]dom.Todo, error) {
	all, _ := f.List(ctx, userID)
	return dueWithin(all, window), nil
}

func (f *fakeTodoRepo) DueWithinAll(ctx context.Context, window time.Duration) ([]dom.Todo, error) {
	var all []dom.Todo
	for _, id := range f.order {
		all = append(all, f.items[id])
	}
	return dueWithin(all, window), nil
}

func dueWithin(items []dom.Todo, window time.Duration) []dom.Todo {
	now := time.Now().UTC()
	var out []dom.Todo
	for _, t := range items {
		if t.Completed || t.DueAt == nil {
			continue
		}
		if t.DueAt.After(now) && !t.DueAt.After(now.Add(window)) {
			out = append(out, t)
		}
	}
	return out
}

func newTodoService(t *testing.T) (*TodoService, *fakeTodoRepo) {
	t.Helper()
	r := newFakeTodoRepo()
	return NewTodoService(r, nil, time.Hour), r
}

func TestCreateDefaultsPriorityToMedium(t *testing.T) {
	svc, _ := newTodoService(t)

	created, err := svc.Create(context.Background(), 1, "  buy milk  ", "", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, dom.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CompletedAt)
}

func TestCreateRejectsPastDueDate(t *testing.T) {
	svc, _ := newTodoService(t)
	past := time.Now().UTC().Add(-time.Hour)

	_, err := svc.Create(context.Background(), 1, "late", "", &past, dom.PriorityHigh)
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestToggleSetsAndClearsCompletedAt(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "task", "", nil, dom.PriorityLow)
	require.NoError(t, err)

	done, err := svc.Toggle(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := svc.Toggle(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
}

func TestToggleUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTodoService(t)

	_, err := svc.Toggle(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTodoService(t)

	err := svc.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOtherUsersTodoIsNotFound(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "mine", "", nil, dom.PriorityLow)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(context.Background(), 1, created.ID)
	require.NoError(t, err)
}

func TestGetByIDScopedToUser(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "mine", "", nil, dom.PriorityLow)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "draft report", "first pass", nil, dom.PriorityLow)
	require.NoError(t, err)

	title := "final report"
	updated, err := svc.Update(context.Background(), 1, created.ID, &title, nil, nil, false, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "final report", updated.Title)
	assert.Equal(t, "first pass", updated.Description)
	assert.Equal(t, dom.PriorityLow, updated.Priority)
}

func TestUpdateCompletedMaintainsPairing(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "task", "", nil, dom.PriorityMedium)
	require.NoError(t, err)

	yes := true
	updated, err := svc.Update(context.Background(), 1, created.ID, nil, nil, nil, false, nil, &yes)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	no := false
	updated, err = svc.Update(context.Background(), 1, created.ID, nil, nil, nil, false, nil, &no)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateRejectsPastDueDate(t *testing.T) {
	svc, _ := newTodoService(t)
	created, err := svc.Create(context.Background(), 1, "task", "", nil, dom.PriorityMedium)
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Minute)
	_, err = svc.Update(context.Background(), 1, created.ID, nil, nil, &past, false, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestUpdateClearsDueDate(t *testing.T) {
	svc, _ := newTodoService(t)
	due := time.Now().UTC().Add(48 * time.Hour)
	created, err := svc.Create(context.Background(), 1, "task", "", &due, dom.PriorityMedium)
	require.NoError(t, err)
	require.NotNil(t, created.DueAt)

	updated, err := svc.Update(context.Background(), 1, created.ID, nil, nil, nil, true, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.DueAt)

	got, err := svc.GetByID(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueAt)
}

func TestListAppliesViewOptions(t *testing.T) {
	svc, _ := newTodoService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, "a", "", nil, dom.PriorityLow)
	require.NoError(t, err)
	b, err := svc.Create(ctx, 1, "b", "", nil, dom.PriorityHigh)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 1, a.ID)
	require.NoError(t, err)

	active, err := svc.List(ctx, 1, todoview.Options{
		Status:   todoview.StatusActive,
		Priority: todoview.PriorityAll,
		Sort:     todoview.SortCreated,
	})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}

func TestDueSoonExcludesCompletedAndOutOfWindow(t *testing.T) {
	svc, _ := newTodoService(t)
	ctx := context.Background()

	soon := time.Now().UTC().Add(30 * time.Minute)
	later := time.Now().UTC().Add(3 * time.Hour)

	in, err := svc.Create(ctx, 1, "soon", "", &soon, dom.PriorityHigh)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "later", "", &later, dom.PriorityHigh)
	require.NoError(t, err)
	doneSoon := time.Now().UTC().Add(20 * time.Minute)
	done, err := svc.Create(ctx, 1, "done", "", &doneSoon, dom.PriorityHigh)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 1, done.ID)
	require.NoError(t, err)

	due, err := svc.DueSoon(ctx, 1)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, in.ID, due[0].ID)
}
