package formatter

import (
	"fmt"
	"strings"

	"github.com/avoigt/timecard/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	// chartFullScale is the hour count that fills the bar completely.
	// Longer days overflow to a full bar rather than widening the chart.
	chartFullScale = 10.0
)

// RenderDayBars renders the seven-day series as one horizontal bar per
// day, like "Mon 01-08  ████░░░░░░░░░░░░░░░░   4.0h". Days over eight
// hours color green, short days yellow, empty days dim.
func RenderDayBars(series []domain.DayHours, width int) string {
	if width < 4 {
		width = 4
	}

	var b strings.Builder
	for i, day := range series {
		filled := int(day.Hours / chartFullScale * float64(width))
		if filled > width {
			filled = width
		}
		bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

		style := StyleYellow
		switch {
		case day.Hours == 0:
			style = StyleDim
		case day.Hours >= 8:
			style = StyleGreen
		}

		label := fmt.Sprintf("%s %02d-%02d", day.DayName, int(day.Date.Month), day.Date.Day)
		b.WriteString(fmt.Sprintf("%s  %s  %5.1fh", StyleDim.Render(label), style.Render(bar), day.Hours))
		if i < len(series)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderSummary renders the aggregate figures as a compact block.
func RenderSummary(s domain.WorkSummary) string {
	rows := []struct {
		label string
		value string
	}{
		{"Days logged", fmt.Sprintf("%d", s.TotalDays)},
		{"Total hours", FormatHours(s.TotalHours)},
		{"Average per day", FormatHours(s.AverageHours)},
		{"This week", FormatHours(s.ThisWeekHours)},
		{"This month", FormatHours(s.ThisMonthHours)},
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%-16s", row.label)), StyleBold.Render(row.value)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatHours renders an hour count like "7.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}
