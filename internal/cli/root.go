// Package cli wires the services into a cobra command tree and the
// interactive TUI. The TUI drives the session flow the way the
// original tool does: login, dashboard, entry form; plain subcommands
// cover non-interactive use.
package cli

import (
	"github.com/avoigt/timecard/internal/auth"
	"github.com/avoigt/timecard/internal/directory"
	"github.com/avoigt/timecard/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands
// and TUI views.
type App struct {
	Records   service.RecordService
	Stats     service.StatsService
	Auth      *auth.Manager
	Directory directory.Directory

	// IsInteractive reports whether stdin is an interactive terminal;
	// injected from main so tests can force either mode.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "timecard" command and registers
// all subcommands against the provided App. Running with no arguments
// on a terminal launches the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timecard",
		Short: "Track daily work hours and view summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newLogCmd(app),
		newListCmd(app),
		newSummaryCmd(app),
		newUsersCmd(app),
	)

	return root
}
