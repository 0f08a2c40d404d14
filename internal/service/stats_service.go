package service

import (
	"context"
	"time"

	"github.com/vedp205/chronos-home/internal/repo"
)

// StatsService serves the dashboard counters.
type StatsService struct {
	repo      repo.StatsRepo
	dueWindow time.Duration
}

func NewStatsService(r repo.StatsRepo, dueWindow time.Duration) *StatsService {
	if dueWindow <= 0 {
		dueWindow = time.Hour
	}
	return &StatsService{repo: r, dueWindow: dueWindow}
}

func (s *StatsService) Get(ctx context.Context, userID int64) (repo.Stats, error) {
	return s.repo.Get(ctx, userID, s.dueWindow)
}
