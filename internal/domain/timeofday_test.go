package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "09:00", want: TimeOfDay{Hour: 9, Minute: 0}},
		{input: "22:30", want: TimeOfDay{Hour: 22, Minute: 30}},
		{input: "00:00", want: TimeOfDay{}},
		{input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "garbage", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:05", TimeOfDay{Hour: 8, Minute: 5}.String())
	assert.Equal(t, "00:00", TimeOfDay{}.String())
}

func TestElapsedHours(t *testing.T) {
	tests := []struct {
		name         string
		start, end   string
		breakMinutes int
		want         float64
	}{
		{name: "regular day", start: "09:00", end: "17:30", breakMinutes: 30, want: 8.0},
		{name: "no break", start: "08:00", end: "16:00", breakMinutes: 0, want: 8.0},
		{name: "overnight shift", start: "22:00", end: "06:00", breakMinutes: 0, want: 8.0},
		{name: "overnight with break", start: "22:00", end: "06:30", breakMinutes: 30, want: 8.0},
		{name: "break exceeds span clamps to zero", start: "09:00", end: "10:00", breakMinutes: 120, want: 0},
		{name: "zero span", start: "09:00", end: "09:00", breakMinutes: 0, want: 0},
		{name: "one minute before midnight wrap", start: "00:00", end: "23:59", breakMinutes: 0, want: 1439.0 / 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)
			end, err := ParseTimeOfDay(tt.end)
			require.NoError(t, err)

			got := ElapsedHours(start, end, tt.breakMinutes)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)

			// Deterministic: same inputs, same output.
			assert.Equal(t, got, ElapsedHours(start, end, tt.breakMinutes))
		})
	}
}

func TestWorkRecord_Recalculate(t *testing.T) {
	r := WorkRecord{
		StartTime:    TimeOfDay{Hour: 9},
		EndTime:      TimeOfDay{Hour: 17},
		BreakMinutes: 60,
	}
	r.Recalculate()
	assert.InDelta(t, 7.0, r.TotalHours, 1e-9)

	r.BreakMinutes = 600
	r.Recalculate()
	assert.Zero(t, r.TotalHours)
}
