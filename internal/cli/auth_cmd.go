package cli

import (
	"context"
	"fmt"

	"github.com/avoigt/timecard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a login session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the login session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout(context.Background())
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	var extend bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session := app.Auth.CurrentSession(ctx)
			if session == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			if extend {
				app.Auth.ExtendSession(ctx)
				session = app.Auth.CurrentSession(ctx)
			}
			fmt.Printf("%s <%s>, session expires %s\n",
				session.User.Name, session.User.Email,
				session.ExpiryTime.Local().Format("15:04"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&extend, "extend", false, "Renew the session before printing")

	return cmd
}

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List accounts that can log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			users := app.Directory.ListLoginEnabled(context.Background())

			rows := make([][]string, 0, len(users))
			for _, u := range users {
				note := ""
				if u.HasTempPassword {
					note = "temporary password"
				}
				rows = append(rows, []string{u.Name, u.Email, note})
			}
			fmt.Print(formatter.RenderTable([]string{"NAME", "EMAIL", ""}, rows))
			return nil
		},
	}
}
