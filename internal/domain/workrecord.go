package domain

import "time"

// WorkRecord is one user's logged work interval for one calendar day.
// At most one record exists per (UserID, Date); TotalHours is derived
// from the time span and never mutated independently.
type WorkRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Date         Date      `json:"date"`
	StartTime    TimeOfDay `json:"startTime"`
	EndTime      TimeOfDay `json:"endTime"`
	BreakMinutes int       `json:"breakMinutes"`
	TotalHours   float64   `json:"totalHours"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Recalculate refreshes TotalHours from the stored span and break.
// Called on every write so the derived field can never drift.
func (r *WorkRecord) Recalculate() {
	r.TotalHours = ElapsedHours(r.StartTime, r.EndTime, r.BreakMinutes)
}
