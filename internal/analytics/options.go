package analytics

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/domain"
)

// SuccessMetric selects which day count feeds a goal's success rate.
type SuccessMetric string

const (
	MetricDaysTracked   SuccessMetric = "days_tracked"
	MetricDaysTargetMet SuccessMetric = "days_target_met"
)

// DayPolicy selects how several entries on the same day are counted.
type DayPolicy string

const (
	// DayPolicyMerge sums same-day entries and counts the day once.
	DayPolicyMerge DayPolicy = "merge_by_day"
	// DayPolicyCountEntries counts every entry as one tracked day.
	DayPolicyCountEntries DayPolicy = "count_entries"
)

// Options tunes an aggregation. The zero value is valid.
type Options struct {
	// AsOf anchors the current streak. Zero means the last day of each
	// month; later dates are clipped to it.
	AsOf                 time.Time
	StreakType           StreakType
	SuccessMetric        SuccessMetric
	DayPolicy            DayPolicy
	IncludeDailyProgress bool
}

func DefaultOptions() Options {
	return Options{
		StreakType:    StreakTargetMet,
		SuccessMetric: MetricDaysTracked,
		DayPolicy:     DayPolicyMerge,
	}
}

func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.StreakType == "" {
		o.StreakType = def.StreakType
	}
	if o.SuccessMetric == "" {
		o.SuccessMetric = def.SuccessMetric
	}
	if o.DayPolicy == "" {
		o.DayPolicy = def.DayPolicy
	}
	if _, err := ParseStreakType(string(o.StreakType)); err != nil {
		return o, err
	}
	if _, err := ParseSuccessMetric(string(o.SuccessMetric)); err != nil {
		return o, err
	}
	if o.DayPolicy != DayPolicyMerge && o.DayPolicy != DayPolicyCountEntries {
		return o, invalid("day policy", string(o.DayPolicy), "expected %s or %s", DayPolicyMerge, DayPolicyCountEntries)
	}
	return o, nil
}

// anchorFor clips AsOf into month, defaulting to the month's last day.
func (o Options) anchorFor(m Month) time.Time {
	last := m.LastDay()
	if o.AsOf.IsZero() {
		return last
	}
	asOf := domain.CalendarDay(o.AsOf)
	if asOf.After(last) {
		return last
	}
	return asOf
}

func ParseStreakType(s string) (StreakType, error) {
	switch StreakType(s) {
	case StreakTargetMet, StreakProgressRecorded:
		return StreakType(s), nil
	}
	return "", invalid("streak type", s, "expected %s or %s", StreakTargetMet, StreakProgressRecorded)
}

func ParseSuccessMetric(s string) (SuccessMetric, error) {
	switch SuccessMetric(s) {
	case MetricDaysTracked, MetricDaysTargetMet:
		return SuccessMetric(s), nil
	}
	return "", invalid("success metric", s, "expected %s or %s", MetricDaysTracked, MetricDaysTargetMet)
}
