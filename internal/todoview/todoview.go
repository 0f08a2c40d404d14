// Package todoview derives the list a client sees from a user's full set of
// todos: status/priority filtering composed by intersection, plus a chosen
// sort order. It is pure: inputs are never mutated.
package todoview

import (
	"sort"

	"github.com/vedp205/chronos-home/internal/domain"
)

// StatusFilter selects todos by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// PriorityFilter selects todos by priority. "all" keeps everything.
type PriorityFilter string

const (
	PriorityAll PriorityFilter = "all"
)

// SortKey orders the filtered todos.
type SortKey string

const (
	SortDueDate  SortKey = "due_date"
	SortPriority SortKey = "priority"
	// SortCreated passes the storage order through unchanged
	// (repos return created_at DESC).
	SortCreated SortKey = "created"
)

// Options for Apply. Zero values mean "all" / created order.
type Options struct {
	Status   StatusFilter
	Priority PriorityFilter
	Sort     SortKey
}

// ParseOptions maps raw query values onto Options, falling back to the
// identity filters and created order for empty or unknown values.
func ParseOptions(status, priority, sortKey string) Options {
	opts := Options{Status: StatusAll, Priority: PriorityAll, Sort: SortCreated}
	switch StatusFilter(status) {
	case StatusActive, StatusCompleted:
		opts.Status = StatusFilter(status)
	}
	if domain.Priority(priority).Valid() {
		opts.Priority = PriorityFilter(priority)
	}
	switch SortKey(sortKey) {
	case SortDueDate, SortPriority:
		opts.Sort = SortKey(sortKey)
	}
	return opts
}

// Apply filters then sorts items according to opts and returns a new slice.
func Apply(items []domain.Todo, opts Options) []domain.Todo {
	out := filter(items, opts.Status, opts.Priority)
	sortTodos(out, opts.Sort)
	return out
}

func filter(items []domain.Todo, status StatusFilter, priority PriorityFilter) []domain.Todo {
	out := make([]domain.Todo, 0, len(items))
	for _, t := range items {
		switch status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if priority != PriorityAll && priority != "" && t.Priority != domain.Priority(priority) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sortTodos(items []domain.Todo, key SortKey) {
	switch key {
	case SortDueDate:
		// Dated items ascending; undated items after every dated one,
		// keeping their input order among themselves.
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].DueAt, items[j].DueAt
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortPriority:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Priority.Rank() < items[j].Priority.Rank()
		})
	}
	// SortCreated: storage order is already created_at DESC.
}
