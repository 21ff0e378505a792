package service

import (
	"context"
	"errors"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/repository"
)

type recordService struct {
	records repository.RecordRepo
	obs     UseCaseObserver
}

// NewRecordService creates the record use cases over the given repo.
func NewRecordService(records repository.RecordRepo, obs UseCaseObserver) RecordService {
	if obs == nil {
		obs = NoopUseCaseObserver{}
	}
	return &recordService{records: records, obs: obs}
}

func (s *recordService) Upsert(ctx context.Context, p repository.UpsertParams) (*domain.WorkRecord, error) {
	var record *domain.WorkRecord
	err := observe(ctx, s.obs, "record.upsert", map[string]any{"user": p.UserID, "date": p.Date.String()}, func() error {
		var err error
		record, err = s.records.Upsert(ctx, p)
		return err
	})
	return record, err
}

// FindByDate returns nil without error when no record exists for the
// day; absence is a normal outcome at this layer.
func (s *recordService) FindByDate(ctx context.Context, userID string, date domain.Date) (*domain.WorkRecord, error) {
	record, err := s.records.FindByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return record, err
}

func (s *recordService) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WorkRecord, error) {
	return s.records.ListByUser(ctx, userID, limit)
}

func (s *recordService) Delete(ctx context.Context, userID, id string) (bool, error) {
	var deleted bool
	err := observe(ctx, s.obs, "record.delete", map[string]any{"user": userID, "id": id}, func() error {
		var err error
		deleted, err = s.records.Delete(ctx, userID, id)
		return err
	})
	return deleted, err
}
