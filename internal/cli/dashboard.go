package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type dashboardKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Metric key.Binding
	Streak key.Binding
	Daily  key.Binding
	Quit   key.Binding
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Metric, k.Streak, k.Daily, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this month")),
		Metric: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "metric")),
		Streak: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "streak type")),
		Daily:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "days")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reportLoadedMsg carries a monthly report fetched in the background.
type reportLoadedMsg struct {
	month  analytics.Month
	report *analytics.MonthlyProgressReport
	err    error
}

// dashboardModel browses monthly reports one month at a time.
type dashboardModel struct {
	ctx      context.Context
	app      *App
	month    analytics.Month
	goalID   string
	settings engineSettings
	daily    bool

	report *analytics.MonthlyProgressReport
	err    error

	keys dashboardKeys
	help help.Model
}

func newDashboardModel(ctx context.Context, a *App, month analytics.Month, settings engineSettings) *dashboardModel {
	if settings.streak == "" {
		settings.streak = analytics.StreakTargetMet
	}
	if settings.metric == "" {
		settings.metric = analytics.MetricDaysTracked
	}
	return &dashboardModel{
		ctx:      ctx,
		app:      a,
		month:    month,
		settings: settings,
		keys:     newDashboardKeys(),
		help:     help.New(),
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m *dashboardModel) load() tea.Cmd {
	a, ctx, month := m.app, m.ctx, m.month
	req := m.settings.monthly(app.NewMonthlySummaryRequest(a.userID(), month.String()))
	req.GoalID = m.goalID
	req.IncludeDailyProgress = m.daily
	return func() tea.Msg {
		report, err := a.Summaries.Monthly(ctx, req)
		return reportLoadedMsg{month: month, report: report, err: err}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case reportLoadedMsg:
		if msg.month != m.month {
			// the user has already moved on
			return m, nil
		}
		m.report, m.err = msg.report, msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.month = m.month.Add(-1)
		case key.Matches(msg, m.keys.Next):
			m.month = m.month.Add(1)
		case key.Matches(msg, m.keys.Today):
			today := m.app.today()
			m.month = analytics.Month{Year: today.Year(), Month: today.Month()}
		case key.Matches(msg, m.keys.Metric):
			m.settings.metric = toggle(m.settings.metric, analytics.MetricDaysTracked, analytics.MetricDaysTargetMet)
		case key.Matches(msg, m.keys.Streak):
			m.settings.streak = toggle(m.settings.streak, analytics.StreakTargetMet, analytics.StreakProgressRecorded)
		case key.Matches(msg, m.keys.Daily):
			m.daily = !m.daily
		default:
			return m, nil
		}
		return m, m.load()
	}
	return m, nil
}

func toggle[T comparable](current, a, b T) T {
	if current == a {
		return b
	}
	return a
}

func (m *dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("goaltrack"))
	b.WriteString("  ")
	b.WriteString(formatter.Dim(fmt.Sprintf("metric %s  streak %s", m.settings.metric, m.settings.streak)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.report == nil:
		b.WriteString(formatter.Dim("Loading " + m.month.String() + "..."))
	default:
		b.WriteString(formatter.FormatMonthlyReport(m.report))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newDashboardCmd(a *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "dashboard [MONTH]",
		Short: "Browse monthly reports interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("dashboard needs an interactive terminal; use 'summary monthly' instead")
			}
			ctx := cmd.Context()

			today := a.today()
			month := analytics.Month{Year: today.Year(), Month: today.Month()}
			if len(args) == 1 {
				parsed, err := analytics.ParseMonth(args[0])
				if err != nil {
					return err
				}
				month = parsed
			}

			settings, err := flags.resolve(a)
			if err != nil {
				return err
			}
			model := newDashboardModel(ctx, a, month, settings)
			model.daily = flags.daily
			if flags.goal != "" {
				if model.goalID, err = resolveGoalID(ctx, a, flags.goal); err != nil {
					return err
				}
			}

			_, err = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}

	flags.register(cmd.Flags(), true)

	return cmd
}
