package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoigt/timecard/internal/cli/formatter"
	"github.com/avoigt/timecard/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// recentRecordLimit caps the record table on the dashboard.
const recentRecordLimit = 10

// dashboardData holds everything the dashboard renders.
type dashboardData struct {
	summary domain.WorkSummary
	series  []domain.DayHours
	records []*domain.WorkRecord
}

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// recordDeletedMsg reports the outcome of a delete.
type recordDeletedMsg struct {
	deleted bool
	err     error
}

// dashboardView is the home screen once a session exists: summary
// figures, the seven-day chart and the recent record table.
type dashboardView struct {
	state   *SharedState
	data    *dashboardData
	loading bool
	err     error
	notice  string

	// cursor selects a row of the recent record table.
	cursor int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) Title() string {
	if v.state.User != nil {
		return "Dashboard · " + v.state.User.Name
	}
	return "Dashboard"
}

func (v *dashboardView) keys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new/edit entry")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete selected")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "extend session")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd { return v.load() }

func (v *dashboardView) load() tea.Cmd {
	userID := v.state.User.ID
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		summary, err := app.Stats.Summary(ctx, userID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		series, err := app.Stats.WeeklySeries(ctx, userID)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		records, err := app.Records.ListByUser(ctx, userID, recentRecordLimit)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			summary: summary,
			series:  series,
			records: records,
		}}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {

	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			data := msg.data
			v.data = &data
			if v.cursor >= len(data.records) {
				v.cursor = 0
			}
		}
		return v, nil

	case recordDeletedMsg:
		switch {
		case msg.err != nil:
			v.notice = "delete failed: " + msg.err.Error()
		case !msg.deleted:
			v.notice = "nothing to delete"
		default:
			v.notice = "entry deleted"
		}
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "q":
		return v, tea.Quit

	case "r":
		v.notice = ""
		return v, v.load()

	case "n":
		return v, pushView(newEntryView(v.state, v.selectedRecord()))

	case "x":
		record := v.selectedRecord()
		if record == nil {
			return v, nil
		}
		app := v.state.App
		userID := v.state.User.ID
		id := record.ID
		return v, func() tea.Msg {
			deleted, err := app.Records.Delete(context.Background(), userID, id)
			return recordDeletedMsg{deleted: deleted, err: err}
		}

	case "e":
		v.state.App.Auth.ExtendSession(ctx)
		v.notice = "session extended"
		return v, nil

	case "l":
		v.state.App.Auth.Logout(ctx)
		v.state.User = nil
		return v, replaceView(newLoginView(v.state, ""))

	case "j", "down":
		if v.data != nil && v.cursor < len(v.data.records)-1 {
			v.cursor++
		}
		return v, nil

	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	}

	return v, nil
}

// selectedRecord returns the record under the cursor, nil when the
// table is empty.
func (v *dashboardView) selectedRecord() *domain.WorkRecord {
	if v.data == nil || len(v.data.records) == 0 {
		return nil
	}
	if v.cursor < 0 || v.cursor >= len(v.data.records) {
		return nil
	}
	return v.data.records[v.cursor]
}

func (v *dashboardView) View() string {
	if v.loading {
		return formatter.StyleDim.Render("Loading…")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	var b strings.Builder
	b.WriteString(formatter.RenderSummary(v.data.summary))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleHeader.Render("Last 7 days"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderDayBars(v.data.series, 24))
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleHeader.Render("Recent entries"))
	b.WriteString("\n")
	b.WriteString(v.renderRecordTable())

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleYellow.Render(v.notice))
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *dashboardView) renderRecordTable() string {
	if len(v.data.records) == 0 {
		return formatter.StyleDim.Render("No work recorded yet. Press n to add today's hours.")
	}

	lines := strings.Split(strings.TrimRight(formatter.RenderRecords(v.data.records), "\n"), "\n")
	// First two lines are header and separator; data rows follow.
	for i := range lines {
		row := i - 2
		if row == v.cursor {
			lines[i] = formatter.StyleBold.Render("> ") + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func (v *dashboardView) renderHelp() string {
	parts := make([]string, 0, 6)
	for _, binding := range v.keys() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return formatter.StyleDim.Render(strings.Join(parts, " · "))
}
