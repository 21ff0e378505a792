package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avoigt/timecard/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionPollInterval is how often the TUI re-checks the session. The
// check itself is pure and idempotent; any cadence is safe.
const sessionPollInterval = time.Minute

// sessionTickMsg triggers the periodic expiry re-check.
type sessionTickMsg struct{}

func sessionTick() tea.Cmd {
	return tea.Tick(sessionPollInterval, func(time.Time) tea.Msg {
		return sessionTickMsg{}
	})
}

// appModel is the root bubbletea Model. It manages a view stack and
// the session poll; everything else lives in the views.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	// Resume a still-valid session, otherwise start at the login screen.
	var home View
	if user := app.Auth.CurrentUser(context.Background()); user != nil {
		state.User = user
		home = newDashboardView(state)
	} else {
		home = newLoginView(state, "")
	}

	return appModel{
		state:     state,
		viewStack: []View{home},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{sessionTick()}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.forward(msg)

	case sessionTickMsg:
		if !m.state.App.Auth.IsAuthenticated(context.Background()) {
			if _, onLogin := m.activeView().(*loginView); !onLogin {
				m.state.User = nil
				login := newLoginView(m.state, "Session expired, please log in again.")
				m.viewStack = []View{login}
				return m, tea.Batch(login.Init(), sessionTick())
			}
		}
		return m, sessionTick()

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.viewStack = []View{msg.view}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast so views below a form reload after mutations.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m.forward(msg)
}

func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.viewStack[len(m.viewStack)-1] = updated
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	header := formatter.StyleHeader.Render("timecard") + formatter.StyleDim.Render(" · "+v.Title())
	return fmt.Sprintf("%s\n\n%s\n\n%s", header, v.View(), m.footer())
}

// footer shows the session countdown next to the active view's hints.
func (m appModel) footer() string {
	session := m.state.App.Auth.CurrentSession(context.Background())
	if session == nil {
		return formatter.StyleDim.Render("ctrl+c quit")
	}
	remaining := session.Remaining(time.Now()).Round(time.Minute)
	return formatter.StyleDim.Render(fmt.Sprintf("session expires in %s · ctrl+c quit", remaining))
}
