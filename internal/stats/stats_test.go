package stats

import (
	"testing"
	"time"

	"github.com/avoigt/timecard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, date string, hours float64) *domain.WorkRecord {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	return &domain.WorkRecord{UserID: "u1", Date: d, TotalHours: hours}
}

func TestSummarize_Totals(t *testing.T) {
	// 2024-01-10 is a Wednesday; the most recent Sunday is 2024-01-07.
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	records := []*domain.WorkRecord{
		record(t, "2024-01-01", 8),
		record(t, "2024-01-08", 4),
	}

	got := Summarize(records, now, time.Sunday)
	assert.Equal(t, 2, got.TotalDays)
	assert.InDelta(t, 12.0, got.TotalHours, 1e-9)
	assert.InDelta(t, 6.0, got.AverageHours, 1e-9)
	assert.InDelta(t, 4.0, got.ThisWeekHours, 1e-9, "only the record on/after Sunday the 7th")
	assert.InDelta(t, 12.0, got.ThisMonthHours, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

	got := Summarize(nil, now, time.Sunday)
	assert.Zero(t, got.TotalDays)
	assert.Zero(t, got.TotalHours)
	assert.Zero(t, got.AverageHours, "empty set divides to zero, not NaN")
}

func TestSummarize_MonthBoundary(t *testing.T) {
	now := time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)
	records := []*domain.WorkRecord{
		record(t, "2024-01-31", 8),
		record(t, "2024-02-01", 6),
	}

	got := Summarize(records, now, time.Sunday)
	assert.InDelta(t, 6.0, got.ThisMonthHours, 1e-9)
	assert.InDelta(t, 14.0, got.TotalHours, 1e-9)
}

func TestSummarize_WeekStartConfigurable(t *testing.T) {
	// 2024-01-08 is a Monday. With Sunday weeks the window opens on the
	// 7th; with Monday weeks it opens on the 8th.
	now := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	records := []*domain.WorkRecord{
		record(t, "2024-01-07", 5),
		record(t, "2024-01-08", 3),
	}

	sunday := Summarize(records, now, time.Sunday)
	assert.InDelta(t, 8.0, sunday.ThisWeekHours, 1e-9)

	monday := Summarize(records, now, time.Monday)
	assert.InDelta(t, 3.0, monday.ThisWeekHours, 1e-9)
}

func TestSummarize_OnWeekStartDay(t *testing.T) {
	// A record logged on the week-start day itself counts.
	now := time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC) // Sunday
	records := []*domain.WorkRecord{record(t, "2024-01-07", 7)}

	got := Summarize(records, now, time.Sunday)
	assert.InDelta(t, 7.0, got.ThisWeekHours, 1e-9)
}

func TestSummarize_Deterministic(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	records := []*domain.WorkRecord{
		record(t, "2024-01-01", 8),
		record(t, "2024-01-08", 4),
	}

	first := Summarize(records, now, time.Sunday)
	second := Summarize(records, now, time.Sunday)
	assert.Equal(t, first, second)
}

func TestWeeklySeries_GapFilled(t *testing.T) {
	today, err := domain.ParseDate("2024-01-10")
	require.NoError(t, err)
	records := []*domain.WorkRecord{
		record(t, "2024-01-05", 4),
		record(t, "2024-01-10", 8),
		record(t, "2023-12-01", 6), // outside the window
	}

	series := WeeklySeries(records, today)
	require.Len(t, series, 7)

	assert.Equal(t, "2024-01-04", series[0].Date.String(), "ascending from today-6")
	assert.Equal(t, "2024-01-10", series[6].Date.String())
	assert.Zero(t, series[0].Hours)
	assert.InDelta(t, 4.0, series[1].Hours, 1e-9)
	assert.InDelta(t, 8.0, series[6].Hours, 1e-9)

	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Date.AddDays(1), series[i].Date, "consecutive days")
	}
}

func TestWeeklySeries_EmptyRecords(t *testing.T) {
	today, err := domain.ParseDate("2024-01-10")
	require.NoError(t, err)

	series := WeeklySeries(nil, today)
	require.Len(t, series, 7)
	for _, day := range series {
		assert.Zero(t, day.Hours)
		assert.NotEmpty(t, day.DayName)
	}
}

func TestWeeklySeries_DayNames(t *testing.T) {
	today, err := domain.ParseDate("2024-01-10") // Wednesday
	require.NoError(t, err)

	series := WeeklySeries(nil, today)
	assert.Equal(t, "Thu", series[0].DayName)
	assert.Equal(t, "Wed", series[6].DayName)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		weekStart time.Weekday
		want      string
	}{
		{"wednesday back to sunday", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), time.Sunday, "2024-01-07"},
		{"sunday stays", time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), time.Sunday, "2024-01-07"},
		{"sunday back to monday", time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), time.Monday, "2024-01-01"},
		{"monday stays with monday weeks", time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), time.Monday, "2024-01-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.now, tt.weekStart).String())
		})
	}
}
