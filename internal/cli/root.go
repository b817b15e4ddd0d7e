package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/goaltrack/internal/config"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals     service.GoalService
	Progress  service.ProgressService
	Summaries service.SummaryService
	Import    service.ImportService

	Config config.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal, enabling forms and
	// confirmations. Nil means non-interactive.
	IsInteractive func() bool
	// IsOutputTerminal picks the default output format: text for a
	// terminal, JSON otherwise. Nil means not a terminal.
	IsOutputTerminal func() bool
	// Now is the clock used for default dates. Nil means time.Now.
	Now func() time.Time

	format string
	user   string
}

const (
	formatText = "text"
	formatJSON = "json"
)

// NewRootCmd creates the top-level "goaltrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "goaltrack",
		Short:         "Track daily minutes against your goals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch app.format {
			case "", formatText, formatJSON:
				return nil
			}
			return fmt.Errorf("invalid --format %q (expected %s or %s)", app.format, formatText, formatJSON)
		},
	}

	root.PersistentFlags().StringVar(&app.format, "format", "", "Output format: text or json (default text on a terminal, json otherwise)")
	root.PersistentFlags().StringVar(&app.user, "user", "", "Act as this user ID (default from GOALTRACK_USER)")

	root.AddCommand(
		newGoalCmd(app),
		newProgressCmd(app),
		newSummaryCmd(app),
		newDashboardCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) userID() string {
	if a.user != "" {
		return a.user
	}
	if a.Config.UserID != "" {
		return a.Config.UserID
	}
	return config.DefaultConfig().UserID
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// today is the local calendar date, as a UTC calendar day.
func (a *App) today() time.Time {
	return domain.CalendarDay(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) jsonOutput() bool {
	switch a.format {
	case formatJSON:
		return true
	case formatText:
		return false
	}
	return a.IsOutputTerminal == nil || !a.IsOutputTerminal()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// render writes v as indented JSON or the text produced by text, depending
// on the selected output format.
func (a *App) render(w io.Writer, v any, text func() string) error {
	if a.jsonOutput() {
		return writeJSON(w, v)
	}
	_, err := fmt.Fprintln(w, text())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
