package repository

import (
	"context"
	"testing"
	"time"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*KVRecordRepo, *kvstore.MemoryStore, *time.Time) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	repo := NewKVRecordRepo(kv, nil)

	clock := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	return repo, kv, &clock
}

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestKVRecordRepo_UpsertCreates(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()

	record, err := repo.Upsert(ctx, UpsertParams{
		UserID:       "u1",
		Date:         mustDate(t, "2024-01-10"),
		Start:        mustTime(t, "09:00"),
		End:          mustTime(t, "17:30"),
		BreakMinutes: 30,
		Notes:        "standup day",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.InDelta(t, 8.0, record.TotalHours, 1e-9)
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	assert.Equal(t, "standup day", record.Notes)

	found, err := repo.FindByUserAndDate(ctx, "u1", mustDate(t, "2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, record.ID, found.ID)
}

func TestKVRecordRepo_UpsertReplacesInPlace(t *testing.T) {
	repo, _, clock := newTestRepo(t)
	ctx := context.Background()

	params := UpsertParams{
		UserID: "u1",
		Date:   mustDate(t, "2024-01-10"),
		Start:  mustTime(t, "09:00"),
		End:    mustTime(t, "17:00"),
	}
	first, err := repo.Upsert(ctx, params)
	require.NoError(t, err)

	*clock = clock.Add(time.Hour)
	params.End = mustTime(t, "18:00")
	params.BreakMinutes = 60
	second, err := repo.Upsert(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "id survives replace")
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "createdAt is immutable")
	assert.True(t, second.UpdatedAt.After(first.CreatedAt))
	assert.InDelta(t, 8.0, second.TotalHours, 1e-9)

	// Still exactly one record for the (user, date) pair.
	records, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestKVRecordRepo_UpsertIdempotent(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()

	params := UpsertParams{
		UserID: "u1",
		Date:   mustDate(t, "2024-01-10"),
		Start:  mustTime(t, "08:00"),
		End:    mustTime(t, "16:00"),
	}
	first, err := repo.Upsert(ctx, params)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, first.TotalHours, second.TotalHours)
}

func TestKVRecordRepo_ListByUser(t *testing.T) {
	repo, _, _ := newTestRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2024-01-08", "2024-01-10", "2024-01-09"} {
		_, err := repo.Upsert(ctx, UpsertParams{
			UserID: "u1",
			Date:   mustDate(t, date),
			Start:  mustTime(t, "09:00"),
			End:    mustTime(t, "17:00"),
		})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, UpsertParams{
		UserID: "u2",
		Date:   mustDate(t, "2024-01-10"),
		Start:  mustTime(t, "09:00"),
		End:    mustTime(t, "17:00"),
	})
	require.NoError(t, err)

	records, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, records, 3, "other users' records are filtered out")
	assert.Equal(t, "2024-01-10", records[0].Date.String(), "sorted date descending")
	assert.Equal(t, "2024-01-09", records[1].Date.String())
	assert.Equal(t, "2024-01-08", records[2].Date.String())

	limited, err := repo.ListByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "2024-01-10", limited[0].Date.String())
}

func TestKVRecordRepo_Delete(t *testing.T) {
	repo, kv, _ := newTestRepo(t)
	ctx := context.Background()

	record, err := repo.Upsert(ctx, UpsertParams{
		UserID: "u1",
		Date:   mustDate(t, "2024-01-10"),
		Start:  mustTime(t, "09:00"),
		End:    mustTime(t, "17:00"),
	})
	require.NoError(t, err)

	// Wrong owner: record stays put.
	ok, err := repo.Delete(ctx, "u2", record.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, "u1", record.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByUserAndDate(ctx, "u1", mustDate(t, "2024-01-10"))
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op and leaves the store unchanged.
	before, _, err := kv.Get(ctx, recordsKey)
	require.NoError(t, err)
	ok, err = repo.Delete(ctx, "u1", record.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	after, _, err := kv.Get(ctx, recordsKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestKVRecordRepo_CorruptBlobTreatedAsEmpty(t *testing.T) {
	repo, kv, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, recordsKey, "{not json"))

	records, err := repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Writing through the corrupt state starts a fresh collection.
	_, err = repo.Upsert(ctx, UpsertParams{
		UserID: "u1",
		Date:   mustDate(t, "2024-01-10"),
		Start:  mustTime(t, "09:00"),
		End:    mustTime(t, "17:00"),
	})
	require.NoError(t, err)

	records, err = repo.ListByUser(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestKVRecordRepo_RoundTripsThroughStorage(t *testing.T) {
	repo, kv, _ := newTestRepo(t)
	ctx := context.Background()

	original, err := repo.Upsert(ctx, UpsertParams{
		UserID:       "u1",
		Date:         mustDate(t, "2024-01-10"),
		Start:        mustTime(t, "22:00"),
		End:          mustTime(t, "06:15"),
		BreakMinutes: 45,
		Notes:        "night shift",
	})
	require.NoError(t, err)

	// A fresh repo over the same store must see identical data.
	reopened := NewKVRecordRepo(kv, nil)
	loaded, err := reopened.FindByUserAndDate(ctx, "u1", mustDate(t, "2024-01-10"))
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}
