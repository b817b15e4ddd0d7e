package cli

import (
	"strconv"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"report"},
		Short:   "Show monthly and yearly progress reports",
	}

	cmd.AddCommand(
		newSummaryMonthlyCmd(a),
		newSummaryYearlyCmd(a),
	)

	return cmd
}

func newSummaryMonthlyCmd(a *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "monthly [MONTH]",
		Short: "Per-goal report for one month (YYYY-MM, default current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			month := a.now().Format("2006-01")
			if len(args) == 1 {
				month = args[0]
			}

			settings, err := flags.resolve(a)
			if err != nil {
				return err
			}
			req := settings.monthly(app.NewMonthlySummaryRequest(a.userID(), month))
			req.IncludeDailyProgress = flags.daily
			if flags.goal != "" {
				if req.GoalID, err = resolveGoalID(ctx, a, flags.goal); err != nil {
					return err
				}
			}

			report, err := a.Summaries.Monthly(ctx, req)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), report, func() string {
				return formatter.FormatMonthlyReport(report)
			})
		},
	}

	flags.register(cmd.Flags(), true)

	return cmd
}

func newSummaryYearlyCmd(a *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "yearly [YEAR]",
		Short: "Month-by-month summary of one year (YYYY, default current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			year := strconv.Itoa(a.now().Year())
			if len(args) == 1 {
				year = args[0]
			}

			settings, err := flags.resolve(a)
			if err != nil {
				return err
			}
			req := settings.yearly(app.NewYearlySummaryRequest(a.userID(), year))
			if flags.goal != "" {
				if req.GoalID, err = resolveGoalID(ctx, a, flags.goal); err != nil {
					return err
				}
			}

			summary, err := a.Summaries.Yearly(ctx, req)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), summary, func() string {
				return formatter.FormatYearlySummary(summary)
			})
		},
	}

	flags.register(cmd.Flags(), false)

	return cmd
}
