package service

import (
	"context"
	"time"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/repository"
	"github.com/avoigt/timecard/internal/stats"
)

type statsService struct {
	records   repository.RecordRepo
	weekStart time.Weekday
	now       func() time.Time
}

// NewStatsService derives summaries from the record repo. weekStart
// picks the week boundary explicitly (Sunday in the default config);
// it is never inferred from locale.
func NewStatsService(records repository.RecordRepo, weekStart time.Weekday) StatsService {
	return &statsService{
		records:   records,
		weekStart: weekStart,
		now:       time.Now,
	}
}

func (s *statsService) Summary(ctx context.Context, userID string) (domain.WorkSummary, error) {
	records, err := s.records.ListByUser(ctx, userID, 0)
	if err != nil {
		return domain.WorkSummary{}, err
	}
	return stats.Summarize(records, s.now(), s.weekStart), nil
}

func (s *statsService) WeeklySeries(ctx context.Context, userID string) ([]domain.DayHours, error) {
	records, err := s.records.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return stats.WeeklySeries(records, domain.DateOf(s.now())), nil
}
