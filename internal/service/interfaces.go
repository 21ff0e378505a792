package service

import (
	"context"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/repository"
)

// RecordService exposes the work record operations the UI layer calls
// once the session gate has passed.
type RecordService interface {
	Upsert(ctx context.Context, p repository.UpsertParams) (*domain.WorkRecord, error)
	FindByDate(ctx context.Context, userID string, date domain.Date) (*domain.WorkRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WorkRecord, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// StatsService derives read-only views; it never writes.
type StatsService interface {
	Summary(ctx context.Context, userID string) (domain.WorkSummary, error)
	WeeklySeries(ctx context.Context, userID string) ([]domain.DayHours, error)
}
