// Package stats derives summary views from a user's work records.
// Every function is pure: same records and same reference time yield
// identical output, with no side effects.
package stats

import (
	"time"

	"github.com/avoigt/timecard/internal/domain"
)

// Summarize computes the aggregate view over all of a user's records.
// The week window starts at the most recent weekStart day at midnight
// in now's location; the month window starts at the first of now's
// month. An empty record set yields a zero summary, not an error.
func Summarize(records []*domain.WorkRecord, now time.Time, weekStart time.Weekday) domain.WorkSummary {
	summary := domain.WorkSummary{TotalDays: len(records)}
	if len(records) == 0 {
		return summary
	}

	weekFrom := startOfWeek(now, weekStart)
	monthFrom := domain.Date{Year: now.Year(), Month: now.Month(), Day: 1}

	for _, record := range records {
		summary.TotalHours += record.TotalHours
		if !record.Date.Before(weekFrom) {
			summary.ThisWeekHours += record.TotalHours
		}
		if !record.Date.Before(monthFrom) {
			summary.ThisMonthHours += record.TotalHours
		}
	}
	summary.AverageHours = summary.TotalHours / float64(summary.TotalDays)
	return summary
}

// WeeklySeries produces exactly seven entries covering today-6 through
// today in ascending date order. Days without a record carry zero
// hours; the series is never shorter than seven.
func WeeklySeries(records []*domain.WorkRecord, today domain.Date) []domain.DayHours {
	hoursByDate := make(map[domain.Date]float64, len(records))
	for _, record := range records {
		hoursByDate[record.Date] = record.TotalHours
	}

	series := make([]domain.DayHours, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		date := today.AddDays(offset)
		series = append(series, domain.DayHours{
			Date:    date,
			Hours:   hoursByDate[date],
			DayName: date.Weekday().String()[:3],
		})
	}
	return series
}

// startOfWeek returns the calendar day of the most recent weekStart
// at or before now.
func startOfWeek(now time.Time, weekStart time.Weekday) domain.Date {
	back := (int(now.Weekday()) - int(weekStart) + 7) % 7
	return domain.DateOf(now).AddDays(-back)
}
