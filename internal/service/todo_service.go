package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vedp205/chronos-home/internal/cache"
	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/repo"
	"github.com/vedp205/chronos-home/internal/todoview"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidDueDate = errors.New("due_date is in the past")
)

type TodoService struct {
	repo      repo.TodoRepo
	cache     *cache.TodoCache
	dueWindow time.Duration
	sf        singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
// dueWindow bounds the due-soon listing; zero falls back to one hour.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache, dueWindow time.Duration) *TodoService {
	if dueWindow <= 0 {
		dueWindow = time.Hour
	}
	return &TodoService{repo: r, cache: c, dueWindow: dueWindow}
}

func (s *TodoService) Create(ctx context.Context, userID int64, title, desc string, dueAt *time.Time, priority dom.Priority) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if !priority.Valid() {
		priority = dom.PriorityMedium
	}
	if dueAt != nil && dueAt.Before(time.Now().UTC()) {
		return dom.Todo{}, ErrInvalidDueDate
	}

	t, err := s.repo.Create(ctx, dom.Todo{
		UserID:      userID,
		Title:       title,
		Description: desc,
		DueAt:       dueAt,
		Priority:    priority,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// List fetches the user's full set and applies the view engine: the result
// is what the dashboard renders for the chosen filters and sort key.
func (s *TodoService) List(ctx context.Context, userID int64, opts todoview.Options) ([]dom.Todo, error) {
	list, err := s.listAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return todoview.Apply(list, opts), nil
}

func (s *TodoService) listAll(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *TodoService) GetByID(ctx context.Context, userID, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update patches the given fields; nil pointers keep the current values.
// clearDue drops the deadline entirely and wins over dueAt.
func (s *TodoService) Update(ctx context.Context, userID, id int64, title, desc *string, dueAt *time.Time, clearDue bool, priority *dom.Priority, completed *bool) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if clearDue {
		patch.DueAt = nil
	} else if dueAt != nil {
		if dueAt.Before(time.Now().UTC()) {
			return dom.Todo{}, ErrInvalidDueDate
		}
		patch.DueAt = dueAt
	}
	if priority != nil && priority.Valid() {
		patch.Priority = *priority
	}
	if completed != nil {
		applyCompletion(&patch, *completed)
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Toggle flips completion in a single update: completed_at is set on
// false to true and cleared on true to false.
func (s *TodoService) Toggle(ctx context.Context, userID, id int64) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	applyCompletion(&patch, !existing.Completed)
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// applyCompletion keeps the completed/completed_at pairing: completed_at is
// non-nil exactly when completed is true.
func applyCompletion(t *dom.Todo, completed bool) {
	if completed == t.Completed {
		return
	}
	t.Completed = completed
	if completed {
		now := time.Now().UTC()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TodoService) Search(ctx context.Context, userID int64, q string) ([]dom.Todo, error) {
	q = strings.TrimSpace(q)
	if s.cache != nil {
		key := "search:" + strconv.FormatInt(userID, 10) + ":" + strings.ToLower(q)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetSearch(ctx, userID, q); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.Search(ctx, userID, q)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetSearch(ctx, userID, q, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.Search(ctx, userID, q)
}

// DueSoon lists the user's incomplete todos inside the due window.
func (s *TodoService) DueSoon(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "duesoon:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetDueSoon(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.DueWithin(ctx, userID, s.dueWindow)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetDueSoon(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.DueWithin(ctx, userID, s.dueWindow)
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx, userID)
	}
}
