package cli

import (
	"github.com/avoigt/timecard/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// View is one screen of the TUI. Views receive every message while on
// top of the stack and return their successor (usually themselves).
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Title() string
}

// SharedState is passed to every view.
type SharedState struct {
	App    *App
	Width  int
	Height int

	// User is the logged-in user while a session is valid, nil on the
	// login screen.
	User *domain.User
}

// ── navigation messages ──────────────────────────────────────────────────────

// pushViewMsg puts a new view on top of the stack.
type pushViewMsg struct{ view View }

// popViewMsg removes the top view, revealing the one below.
type popViewMsg struct{}

// replaceViewMsg swaps the whole stack for a single view.
type replaceViewMsg struct{ view View }

// refreshViewMsg tells views to reload their data after a mutation.
type refreshViewMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
