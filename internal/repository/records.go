package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/kvstore"
	"github.com/google/uuid"
)

// recordsKey is the key-value store key holding the serialized work
// record collection. Every mutation rewrites the whole collection.
const recordsKey = "work_records"

// UpsertParams carries the caller-validated fields of one work entry.
type UpsertParams struct {
	UserID       string
	Date         domain.Date
	Start        domain.TimeOfDay
	End          domain.TimeOfDay
	BreakMinutes int
	Notes        string
}

// RecordRepo owns the work record collection. It is the single writer;
// aggregation only ever reads through ListByUser.
type RecordRepo interface {
	Upsert(ctx context.Context, p UpsertParams) (*domain.WorkRecord, error)
	FindByUserAndDate(ctx context.Context, userID string, date domain.Date) (*domain.WorkRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WorkRecord, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// KVRecordRepo implements RecordRepo on the key-value store, holding
// the full collection as one JSON blob.
type KVRecordRepo struct {
	kv  kvstore.Store
	log *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewKVRecordRepo creates a RecordRepo backed by the given store.
// A nil logger discards log output.
func NewKVRecordRepo(kv kvstore.Store, log *slog.Logger) *KVRecordRepo {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &KVRecordRepo{
		kv:    kv,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Upsert writes the record for (UserID, Date), replacing an existing
// one in place. ID and CreatedAt survive a replace; UpdatedAt and the
// derived TotalHours are refreshed on every write.
func (r *KVRecordRepo) Upsert(ctx context.Context, p UpsertParams) (*domain.WorkRecord, error) {
	records, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	var record *domain.WorkRecord
	for _, existing := range records {
		if existing.UserID == p.UserID && existing.Date == p.Date {
			record = existing
			break
		}
	}

	if record == nil {
		record = &domain.WorkRecord{
			ID:        r.newID(),
			UserID:    p.UserID,
			Date:      p.Date,
			CreatedAt: now,
		}
		records = append(records, record)
	}

	record.StartTime = p.Start
	record.EndTime = p.End
	record.BreakMinutes = p.BreakMinutes
	record.Notes = p.Notes
	record.UpdatedAt = now
	record.Recalculate()

	if err := r.saveAll(ctx, records); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *KVRecordRepo) FindByUserAndDate(ctx context.Context, userID string, date domain.Date) (*domain.WorkRecord, error) {
	records, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.UserID == userID && record.Date == date {
			return record, nil
		}
	}
	return nil, fmt.Errorf("work record: %w", ErrNotFound)
}

// ListByUser returns the user's records sorted by date descending.
// A positive limit truncates the result after sorting.
func (r *KVRecordRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WorkRecord, error) {
	records, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*domain.WorkRecord
	for _, record := range records {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[j].Date.Before(matched[i].Date)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Delete removes the record with the given id owned by userID. Returns
// false without touching storage when no such record exists.
func (r *KVRecordRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	records, err := r.loadAll(ctx)
	if err != nil {
		return false, err
	}

	for i, record := range records {
		if record.UserID == userID && record.ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := r.saveAll(ctx, records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// loadAll reads the full collection. A missing or undecodable blob
// yields the empty collection so the caller stays usable.
func (r *KVRecordRepo) loadAll(ctx context.Context) ([]*domain.WorkRecord, error) {
	blob, ok, err := r.kv.Get(ctx, recordsKey)
	if err != nil {
		return nil, fmt.Errorf("loading work records: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []*domain.WorkRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		r.log.Warn("work record collection is corrupt, treating as empty", "error", err)
		return nil, nil
	}
	return records, nil
}

func (r *KVRecordRepo) saveAll(ctx context.Context, records []*domain.WorkRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding work records: %w", err)
	}
	if err := r.kv.Set(ctx, recordsKey, string(blob)); err != nil {
		return fmt.Errorf("saving work records: %w", err)
	}
	return nil
}
