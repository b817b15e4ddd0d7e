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

func newGoalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(a),
		newGoalListCmd(a),
		newGoalShowCmd(a),
		newGoalEditCmd(a),
		newGoalRemoveCmd(a),
	)

	return cmd
}

func newGoalAddCmd(a *App) *cobra.Command {
	var (
		title, description string
		target             int
		start, end         time.Time
		tags               []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		Long:  "Create a new goal. Without --title on an interactive terminal, a form collects the fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{
				UserID:              a.userID(),
				Title:               title,
				Description:         description,
				TargetMinutesPerDay: target,
				StartDate:           start,
				Tags:                tags,
			}
			if g.StartDate.IsZero() {
				g.StartDate = a.today()
			}
			if cmd.Flags().Changed("end") {
				g.EndDate = &end
			}

			if title == "" {
				if !a.interactive() {
					return fmt.Errorf("--title is required")
				}
				v := goalFormValues{start: g.StartDate.Format(domain.DateLayout)}
				if target > 0 {
					v.target = strconv.Itoa(target)
				}
				if err := goalForm(&v).Run(); err != nil {
					return err
				}
				if err := v.apply(g); err != nil {
					return err
				}
			}

			if err := a.Goals.Create(cmd.Context(), g); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewGoalView(g), func() string {
				return fmt.Sprintf("Created goal %s [%s]", formatter.Bold(g.Title), formatter.TruncID(g.ID))
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().IntVar(&target, "target", 0, "Target minutes per day")
	cmd.Flags().Var(newDayValue(&start), "start", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().Var(newDayValue(&end), "end", "End date (YYYY-MM-DD, default open-ended)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")

	return cmd
}

func newGoalListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := a.Goals.List(cmd.Context(), a.userID())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewGoalViews(goals), func() string {
				if len(goals) == 0 {
					return "No goals found."
				}
				return formatter.FormatGoalList(goals)
			})
		},
	}
}

func newGoalShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show goal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}
			g, err := a.Goals.GetByID(ctx, a.userID(), goalID)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewGoalView(g), func() string {
				return formatter.FormatGoalDetail(g)
			})
		},
	}
}

func newGoalEditCmd(a *App) *cobra.Command {
	var (
		title, description  string
		target              int
		start, end          time.Time
		tags                []string
		clearEnd, clearTags bool
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update a goal",
		Long:  "Update a goal. Only the flags given are changed; changing the target re-evaluates existing entries.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}

			var patch app.GoalPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("target") {
				patch.TargetMinutesPerDay = &target
			}
			if flags.Changed("start") {
				patch.StartDate = &start
			}
			if flags.Changed("end") {
				patch.EndDate = &end
			}
			if flags.Changed("tags") {
				patch.Tags = tags
			}
			patch.ClearEndDate = clearEnd
			patch.ClearTags = clearTags

			g, err := a.Goals.Update(ctx, a.userID(), goalID, patch)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), app.NewGoalView(g), func() string {
				return fmt.Sprintf("Updated goal %s", formatter.Bold(g.Title))
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().IntVar(&target, "target", 0, "New target minutes per day")
	cmd.Flags().Var(newDayValue(&start), "start", "New start date (YYYY-MM-DD)")
	cmd.Flags().Var(newDayValue(&end), "end", "New end date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replace tags (comma-separated)")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Make the goal open-ended")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "Remove all tags")
	cmd.MarkFlagsMutuallyExclusive("end", "clear-end")
	cmd.MarkFlagsMutuallyExclusive("tags", "clear-tags")

	return cmd
}

func newGoalRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a goal and its progress entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			goalID, err := resolveGoalID(ctx, a, args[0])
			if err != nil {
				return err
			}
			g, err := a.Goals.GetByID(ctx, a.userID(), goalID)
			if err != nil {
				return err
			}

			ok, err := confirmRemoval(a, yes, fmt.Sprintf("goal %q and all its progress", g.Title))
			if err != nil || !ok {
				return err
			}

			if err := a.Goals.Delete(ctx, a.userID(), goalID); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), map[string]string{"message": "Goal deleted", "id": goalID}, func() string {
				return fmt.Sprintf("Removed goal %s", formatter.Bold(g.Title))
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
