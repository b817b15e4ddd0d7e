package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type importOutput struct {
	Goals         []app.GoalView `json:"goals"`
	ProgressCount int            `json:"progressCount"`
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import goals and their progress from a JSON file",
		Long: `Import goals and their progress from a JSON file of the form
{"goals": [{"ref", "title", "target_minutes_per_day", "start_date", "progress": [{"date", "minutes"}]}]}.
Nothing is written unless the whole file is valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportFile(cmd.Context(), a.userID(), args[0])
			if err != nil {
				return err
			}

			out := importOutput{Goals: app.NewGoalViews(result.Goals), ProgressCount: result.ProgressCount}
			return a.render(cmd.OutOrStdout(), out, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "Imported %d goals with %d progress entries\n", len(result.Goals), result.ProgressCount)
				if len(result.Goals) > 0 {
					b.WriteString(formatter.FormatGoalList(result.Goals))
				}
				return strings.TrimRight(b.String(), "\n")
			})
		},
	}
}
