package todoview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedp205/chronos-home/internal/domain"
)

func tp(t time.Time) *time.Time { return &t }

func fixtureTodos() []domain.Todo {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Todo{
		{ID: 1, Title: "pay rent", Completed: false, Priority: domain.PriorityHigh, DueAt: tp(base.Add(24 * time.Hour))},
		{ID: 2, Title: "water plants", Completed: true, Priority: domain.PriorityLow, DueAt: nil},
		{ID: 3, Title: "dentist", Completed: false, Priority: domain.PriorityMedium, DueAt: tp(base.Add(2 * time.Hour))},
		{ID: 4, Title: "read book", Completed: false, Priority: domain.PriorityLow, DueAt: nil},
		{ID: 5, Title: "file taxes", Completed: true, Priority: domain.PriorityHigh, DueAt: tp(base.Add(72 * time.Hour))},
	}
}

func ids(items []domain.Todo) []int64 {
	out := make([]int64, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out
}

func TestApplyStatusFilter(t *testing.T) {
	items := fixtureTodos()

	active := Apply(items, Options{Status: StatusActive, Priority: PriorityAll, Sort: SortCreated})
	assert.Equal(t, []int64{1, 3, 4}, ids(active))
	for _, it := range active {
		assert.False(t, it.Completed)
	}

	completed := Apply(items, Options{Status: StatusCompleted, Priority: PriorityAll, Sort: SortCreated})
	assert.Equal(t, []int64{2, 5}, ids(completed))
}

func TestApplyPriorityFilter(t *testing.T) {
	items := fixtureTodos()

	high := Apply(items, Options{Status: StatusAll, Priority: "high", Sort: SortCreated})
	assert.Equal(t, []int64{1, 5}, ids(high))
}

func TestApplyFiltersComposeByIntersection(t *testing.T) {
	items := fixtureTodos()

	out := Apply(items, Options{Status: StatusActive, Priority: "low", Sort: SortCreated})
	require.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ID)
}

func TestApplyAllAllIsIdentity(t *testing.T) {
	items := fixtureTodos()

	out := Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortCreated})
	assert.Equal(t, ids(items), ids(out))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := fixtureTodos()
	before := ids(items)

	_ = Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortDueDate})
	assert.Equal(t, before, ids(items))
}

func TestSortDueDateUndatedLast(t *testing.T) {
	items := fixtureTodos()

	out := Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortDueDate})
	// Dated ascending (3, 1, 5), then undated in input order (2, 4).
	assert.Equal(t, []int64{3, 1, 5, 2, 4}, ids(out))
}

func TestSortDueDateUndatedAfterFarFuture(t *testing.T) {
	far := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.Todo{
		{ID: 1, Priority: domain.PriorityLow, DueAt: nil},
		{ID: 2, Priority: domain.PriorityHigh, DueAt: tp(far)},
	}

	out := Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortDueDate})
	assert.Equal(t, []int64{2, 1}, ids(out))
}

func TestSortPriorityHighFirstStable(t *testing.T) {
	items := []domain.Todo{
		{ID: 1, Priority: domain.PriorityLow},
		{ID: 2, Priority: domain.PriorityMedium},
		{ID: 3, Priority: domain.PriorityHigh},
		{ID: 4, Priority: domain.PriorityMedium},
		{ID: 5, Priority: domain.PriorityHigh},
	}

	out := Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortPriority})
	// Ties keep input order.
	assert.Equal(t, []int64{3, 5, 2, 4, 1}, ids(out))
}

func TestSortCreatedPassesStorageOrderThrough(t *testing.T) {
	items := fixtureTodos()

	out := Apply(items, Options{Status: StatusAll, Priority: PriorityAll, Sort: SortCreated})
	assert.Equal(t, ids(items), ids(out))
}

func TestParseOptionsDefaults(t *testing.T) {
	opts := ParseOptions("", "", "")
	assert.Equal(t, StatusAll, opts.Status)
	assert.Equal(t, PriorityAll, opts.Priority)
	assert.Equal(t, SortCreated, opts.Sort)
}

func TestParseOptionsUnknownValuesFallBack(t *testing.T) {
	opts := ParseOptions("done", "urgent", "alphabetical")
	assert.Equal(t, StatusAll, opts.Status)
	assert.Equal(t, PriorityAll, opts.Priority)
	assert.Equal(t, SortCreated, opts.Sort)
}

func TestParseOptionsValidValues(t *testing.T) {
	opts := ParseOptions("active", "high", "due_date")
	assert.Equal(t, StatusActive, opts.Status)
	assert.Equal(t, PriorityFilter("high"), opts.Priority)
	assert.Equal(t, SortDueDate, opts.Sort)
}
