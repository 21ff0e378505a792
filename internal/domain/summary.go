package domain

// WorkSummary is a derived view over one user's full record set.
// It is computed at query time and never persisted or cached.
type WorkSummary struct {
	TotalDays      int
	TotalHours     float64
	AverageHours   float64
	ThisWeekHours  float64
	ThisMonthHours float64
}

// DayHours is one entry of the fixed seven-day series: the hours worked
// on one calendar day, zero when no record exists for it.
type DayHours struct {
	Date    Date
	Hours   float64
	DayName string
}
