package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avoigt/timecard/internal/auth"
	"github.com/avoigt/timecard/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// loginView collects credentials and mints the session. The account
// select is populated from the directory's login-enabled listing so
// the demo accounts are discoverable, as on the original login screen.
type loginView struct {
	state  *SharedState
	form   *huh.Form
	notice string

	email     string
	password  string
	completed bool
}

func newLoginView(state *SharedState, notice string) *loginView {
	v := &loginView{state: state, notice: notice}
	v.form = v.buildForm()
	return v
}

func (v *loginView) buildForm() *huh.Form {
	users := v.state.App.Directory.ListLoginEnabled(context.Background())

	options := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		label := fmt.Sprintf("%s <%s>", u.Name, u.Email)
		if u.HasTempPassword {
			label += " (temporary password)"
		}
		options = append(options, huh.NewOption(label, u.Email))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Account").
				Options(options...).
				Value(&v.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("password must not be empty")
					}
					return nil
				}),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(true)
}

func (v *loginView) Init() tea.Cmd { return v.form.Init() }

func (v *loginView) Title() string { return "Login" }

func (v *loginView) Update(msg tea.Msg) (View, tea.Cmd) {
	model, cmd := v.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		v.form = form
	}

	if v.form.State == huh.StateCompleted && !v.completed {
		v.completed = true
		user, err := v.state.App.Auth.Login(context.Background(), v.email, v.password)
		if err != nil {
			// Distinct messages for bad credentials and inactive
			// accounts come straight from the session manager.
			notice := err.Error()
			if !errors.Is(err, auth.ErrInvalidCredentials) && !errors.Is(err, auth.ErrAccountInactive) {
				notice = "login failed: " + notice
			}
			fresh := newLoginView(v.state, notice)
			return fresh, fresh.Init()
		}

		v.state.User = user
		return v, replaceView(newDashboardView(v.state))
	}

	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	if v.notice != "" {
		b.WriteString(formatter.StyleRed.Render(v.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(v.form.View())
	return b.String()
}
