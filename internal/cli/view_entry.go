package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avoigt/timecard/internal/cli/formatter"
	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// entryView is the daily entry form: date, start, end, break, notes.
// Submitting upserts, so filling the form for an already-recorded day
// replaces that day in place.
type entryView struct {
	state *SharedState
	form  *huh.Form

	date         string
	start        string
	end          string
	breakMinutes string
	notes        string

	submitted bool
	submitErr error
}

// newEntryView builds the form, prefilled from an existing record when
// editing, otherwise defaulting to today.
func newEntryView(state *SharedState, existing *domain.WorkRecord) *entryView {
	v := &entryView{
		state:        state,
		date:         domain.DateOf(time.Now()).String(),
		breakMinutes: "0",
	}
	if existing != nil {
		v.date = existing.Date.String()
		v.start = existing.StartTime.String()
		v.end = existing.EndTime.String()
		v.breakMinutes = strconv.Itoa(existing.BreakMinutes)
		v.notes = existing.Notes
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&v.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Placeholder("09:00").
				Value(&v.start).
				Validate(validateTimeOfDay),
			huh.NewInput().
				Title("End time (HH:MM)").
				Placeholder("17:30").
				Value(&v.end).
				Validate(validateTimeOfDay),
			huh.NewInput().
				Title("Break (minutes)").
				Placeholder("30").
				Value(&v.breakMinutes).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&v.notes),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(true)

	return v
}

func (v *entryView) Init() tea.Cmd { return v.form.Init() }

func (v *entryView) Title() string { return "Record hours" }

func (v *entryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		if msg.err != nil {
			v.submitErr = msg.err
			return v, nil
		}
		return v, tea.Batch(popView(), refreshViews())

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return v, popView()
		}
	}

	model, cmd := v.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		v.form = form
	}

	switch v.form.State {
	case huh.StateCompleted:
		if v.submitted {
			return v, cmd
		}
		v.submitted = true
		return v, v.submit()
	case huh.StateAborted:
		return v, popView()
	}

	return v, cmd
}

// submit parses the validated fields and upserts the record.
func (v *entryView) submit() tea.Cmd {
	date, _ := domain.ParseDate(strings.TrimSpace(v.date))
	start, _ := domain.ParseTimeOfDay(strings.TrimSpace(v.start))
	end, _ := domain.ParseTimeOfDay(strings.TrimSpace(v.end))
	breakMin, _ := strconv.Atoi(strings.TrimSpace(v.breakMinutes))

	app := v.state.App
	userID := v.state.User.ID
	notes := strings.TrimSpace(v.notes)

	return func() tea.Msg {
		_, err := app.Records.Upsert(context.Background(), repository.UpsertParams{
			UserID:       userID,
			Date:         date,
			Start:        start,
			End:          end,
			BreakMinutes: breakMin,
			Notes:        notes,
		})
		if err != nil {
			return entrySavedMsg{err: err}
		}
		return entrySavedMsg{}
	}
}

// entrySavedMsg reports the upsert outcome back to the form.
type entrySavedMsg struct{ err error }

func (v *entryView) View() string {
	if v.submitErr != nil {
		return formatter.StyleRed.Render("Saving failed: "+v.submitErr.Error()) +
			"\n\n" + formatter.StyleDim.Render("esc back")
	}
	return v.form.View()
}

// ── validators ───────────────────────────────────────────────────────────────

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validateTimeOfDay(s string) error {
	if _, err := domain.ParseTimeOfDay(strings.TrimSpace(s)); err != nil {
		return errors.New("use HH:MM, 00:00 through 23:59")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a number of minutes, 0 or more")
	}
	return nil
}
