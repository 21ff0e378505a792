package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoigt/timecard/internal/cli/formatter"
	"github.com/avoigt/timecard/internal/domain"
	"github.com/avoigt/timecard/internal/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that validates YYYY-MM-DD input as it is
// parsed, so a malformed date fails at flag time with a usable message.
type dateValue struct {
	date *domain.Date
	set  *bool
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if d.set == nil || !*d.set {
		return ""
	}
	return d.date.String()
}

func (d *dateValue) Set(s string) error {
	parsed, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	*d.date = parsed
	*d.set = true
	return nil
}

func (d *dateValue) Type() string { return "date" }

var errNotLoggedIn = errors.New("not logged in, run: timecard login")

// requireUser is the session gate for record commands: no valid
// session, no store access.
func requireUser(ctx context.Context, app *App) (*domain.User, error) {
	user := app.Auth.CurrentUser(ctx)
	if user == nil {
		return nil, errNotLoggedIn
	}
	return user, nil
}

func newLogCmd(app *App) *cobra.Command {
	var startFlag, endFlag, notes string
	var breakMinutes int
	var date domain.Date
	var dateSet bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record or replace one day's work hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			if !dateSet {
				date = domain.DateOf(time.Now())
			}
			start, err := domain.ParseTimeOfDay(startFlag)
			if err != nil {
				return err
			}
			end, err := domain.ParseTimeOfDay(endFlag)
			if err != nil {
				return err
			}
			if breakMinutes < 0 {
				return fmt.Errorf("break minutes must not be negative")
			}

			record, err := app.Records.Upsert(ctx, repository.UpsertParams{
				UserID:       user.ID,
				Date:         date,
				Start:        start,
				End:          end,
				BreakMinutes: breakMinutes,
				Notes:        notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Recorded %s on %s (%s - %s, %dm break)\n",
				formatter.FormatHours(record.TotalHours), record.Date,
				record.StartTime, record.EndTime, record.BreakMinutes)
			return nil
		},
	}

	cmd.Flags().Var(&dateValue{date: &date, set: &dateSet}, "date", "Day to record, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time, HH:MM")
	cmd.Flags().IntVar(&breakMinutes, "break", 0, "Break duration in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded days, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			records, err := app.Records.ListByUser(ctx, user.ID, limit)
			if err != nil {
				return err
			}
			fmt.Println(formatter.RenderRecords(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many days (0 = all)")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, averages and the last seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := requireUser(ctx, app)
			if err != nil {
				return err
			}

			summary, err := app.Stats.Summary(ctx, user.ID)
			if err != nil {
				return err
			}
			series, err := app.Stats.WeeklySeries(ctx, user.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.RenderSummary(summary))
			fmt.Println()
			fmt.Println(formatter.RenderDayBars(series, 24))
			return nil
		},
	}
}
