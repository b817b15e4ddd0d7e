package cli

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/spf13/pflag"
)

// dayValue is a pflag.Value holding a YYYY-MM-DD calendar day.
type dayValue struct {
	t *time.Time
}

var _ pflag.Value = (*dayValue)(nil)

func newDayValue(p *time.Time) *dayValue {
	return &dayValue{t: p}
}

func (d *dayValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dayValue) Set(s string) error {
	t, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (d *dayValue) Type() string { return "date" }

// reportFlags are shared by the summary subcommands.
type reportFlags struct {
	goal      string
	asOf      time.Time
	streak    string
	metric    string
	dayPolicy string
	daily     bool
}

func (f *reportFlags) register(fs *pflag.FlagSet, withDaily bool) {
	fs.StringVar(&f.goal, "goal", "", "Only report this goal (ID or ID prefix)")
	fs.Var(newDayValue(&f.asOf), "as-of", "Anchor date for current streaks (YYYY-MM-DD, default today)")
	fs.StringVar(&f.streak, "streak", "", "Streak type: daily_target_met or daily_progress_recorded")
	fs.StringVar(&f.metric, "metric", "", "Success metric: days_tracked or days_target_met")
	fs.StringVar(&f.dayPolicy, "day-policy", "", "Same-day entries: merge_by_day or count_entries")
	if withDaily {
		fs.BoolVar(&f.daily, "daily", false, "Include the per-day breakdown")
	}
}

// engineSettings resolves the flags against the configured defaults.
type engineSettings struct {
	asOf      time.Time
	streak    analytics.StreakType
	metric    analytics.SuccessMetric
	dayPolicy analytics.DayPolicy
}

func (f *reportFlags) resolve(a *App) (engineSettings, error) {
	s := engineSettings{
		asOf:      a.today(),
		streak:    a.Config.StreakType,
		metric:    a.Config.SuccessMetric,
		dayPolicy: analytics.DayPolicyMerge,
	}
	if !f.asOf.IsZero() {
		s.asOf = f.asOf
	}
	if f.streak != "" {
		st, err := analytics.ParseStreakType(f.streak)
		if err != nil {
			return s, err
		}
		s.streak = st
	}
	if f.metric != "" {
		m, err := analytics.ParseSuccessMetric(f.metric)
		if err != nil {
			return s, err
		}
		s.metric = m
	}
	if f.dayPolicy != "" {
		s.dayPolicy = analytics.DayPolicy(f.dayPolicy)
	}
	return s, nil
}

func (s engineSettings) monthly(req app.MonthlySummaryRequest) app.MonthlySummaryRequest {
	asOf := s.asOf
	req.AsOf = &asOf
	if s.streak != "" {
		req.StreakType = s.streak
	}
	if s.metric != "" {
		req.SuccessMetric = s.metric
	}
	req.DayPolicy = s.dayPolicy
	return req
}

func (s engineSettings) yearly(req app.YearlySummaryRequest) app.YearlySummaryRequest {
	asOf := s.asOf
	req.AsOf = &asOf
	if s.streak != "" {
		req.StreakType = s.streak
	}
	if s.metric != "" {
		req.SuccessMetric = s.metric
	}
	req.DayPolicy = s.dayPolicy
	return req
}
