package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/cli/formatter"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/spf13/cobra"
)

func newProgressCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "progress",
		Aliases: []string{"p"},
		Short:   "Log and manage progress entries",
	}

	cmd.AddCommand(
		newProgressLogCmd(a),
		newProgressListCmd(a),
		newProgressShowCmd(a),
		newProgressEditCmd(a),
		newProgressRemoveCmd(a),
	)

	return cmd
}

func newProgressLogCmd(a *App) *cobra.Command {
	var (
		date time.Time
		note string
	)

	cmd := &cobra.Command{
		Use:   "log GOAL MINUTES",
		Short: "Record minutes spent on a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: must be a whole number", args[1])
			}
			if date.IsZero() {
				date = a.today()
			}

			p := &domain.ProgressEntry{
				GoalID:       goalID,
				Date:         date,
				MinutesSpent: minutes,
				Note:         note,
			}
			if err := a.Progress.Record(ctx, a.userID(), p); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewProgressView(p), func() string {
				line := fmt.Sprintf("Logged %s on %s", formatter.Bold(formatter.FormatMinutes(p.MinutesSpent)), formatter.FormatDay(p.Date))
				if p.TargetMet {
					line += " " + formatter.TargetMark(true) + " target met"
				}
				return line
			})
		},
	}

	cmd.Flags().Var(newDayValue(&date), "date", "Day the minutes were spent (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}

func newProgressListCmd(a *App) *cobra.Command {
	var (
		month string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list [GOAL]",
		Short: "List progress entries for a month",
		Long:  "List progress entries for a month, across all goals or for one goal. With a goal, --all lists its whole history.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if month == "" && !all {
				month = a.now().Format("2006-01")
			}

			var (
				entries []*domain.ProgressEntry
				err     error
			)
			if len(args) == 1 {
				goalID, rerr := resolveGoalID(ctx, a, args[0])
				if rerr != nil {
					return rerr
				}
				if all {
					month = ""
				}
				entries, err = a.Progress.ListByGoal(ctx, a.userID(), goalID, month)
			} else {
				if all {
					return fmt.Errorf("--all requires a goal")
				}
				entries, err = a.Progress.ListByMonth(ctx, a.userID(), month)
			}
			if err != nil {
				return err
			}

			titles, err := goalTitles(ctx, a)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewProgressViews(entries), func() string {
				if len(entries) == 0 {
					return "No progress entries found."
				}
				return formatter.FormatProgressList(entries, titles)
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to list (YYYY-MM, default current month)")
	cmd.Flags().BoolVar(&all, "all", false, "List every entry of the goal")
	cmd.MarkFlagsMutuallyExclusive("month", "all")

	return cmd
}

func newProgressShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a progress entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.Progress.GetByID(ctx, a.userID(), args[0])
			if err != nil {
				return err
			}
			titles, err := goalTitles(ctx, a)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewProgressView(p), func() string {
				return formatter.FormatProgressList([]*domain.ProgressEntry{p}, titles)
			})
		},
	}
}

func newProgressEditCmd(a *App) *cobra.Command {
	var (
		date    time.Time
		minutes int
		note    string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a progress entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch app.ProgressPatch
			flags := cmd.Flags()
			if flags.Changed("date") {
				patch.Date = &date
			}
			if flags.Changed("minutes") {
				patch.MinutesSpent = &minutes
			}
			if flags.Changed("note") {
				patch.Note = &note
			}

			p, err := a.Progress.Update(cmd.Context(), a.userID(), args[0], patch)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewProgressView(p), func() string {
				return fmt.Sprintf("Updated entry for %s: %s %s",
					formatter.FormatDay(p.Date), formatter.FormatMinutes(p.MinutesSpent), formatter.TargetMark(p.TargetMet))
			})
		},
	}

	cmd.Flags().Var(newDayValue(&date), "date", "New day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "New minutes spent")
	cmd.Flags().StringVar(&note, "note", "", "New note")

	return cmd
}

func newProgressRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a progress entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := a.Progress.GetByID(ctx, a.userID(), args[0])
			if err != nil {
				return err
			}

			what := fmt.Sprintf("the %s entry from %s", formatter.FormatMinutes(p.MinutesSpent), formatter.FormatDay(p.Date))
			ok, err := confirmRemoval(a, yes, what)
			if err != nil || !ok {
				return err
			}

			if err := a.Progress.Delete(ctx, a.userID(), p.ID); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), map[string]string{"message": "Progress entry deleted", "id": p.ID}, func() string {
				return "Removed " + what
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
