package formatter

import (
	"fmt"

	"github.com/avoigt/timecard/internal/domain"
)

// RenderRecords renders work records as an aligned table, newest first
// (the order the record store returns them in).
func RenderRecords(records []*domain.WorkRecord) string {
	if len(records) == 0 {
		return StyleDim.Render("No work recorded yet.")
	}

	headers := []string{"DATE", "START", "END", "BREAK", "HOURS", "NOTES"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.String(),
			r.StartTime.String(),
			r.EndTime.String(),
			fmt.Sprintf("%dm", r.BreakMinutes),
			FormatHours(r.TotalHours),
			r.Notes,
		})
	}
	return RenderTable(headers, rows)
}
