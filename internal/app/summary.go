package app

import (
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
)

type MonthlySummaryRequest struct {
	UserID string
	Month  string // YYYY-MM
	GoalID string
	// AsOf anchors current streaks. Nil means today (UTC).
	AsOf                 *time.Time
	StreakType           analytics.StreakType
	SuccessMetric        analytics.SuccessMetric
	DayPolicy            analytics.DayPolicy
	IncludeDailyProgress bool
}

func NewMonthlySummaryRequest(userID, month string) MonthlySummaryRequest {
	return MonthlySummaryRequest{
		UserID:        userID,
		Month:         month,
		StreakType:    analytics.StreakTargetMet,
		SuccessMetric: analytics.MetricDaysTracked,
		DayPolicy:     analytics.DayPolicyMerge,
	}
}

// Options resolves the engine options, reading now only when AsOf is unset.
func (r MonthlySummaryRequest) Options(now time.Time) analytics.Options {
	return engineOptions(r.AsOf, now, r.StreakType, r.SuccessMetric, r.DayPolicy, r.IncludeDailyProgress)
}

type YearlySummaryRequest struct {
	UserID        string
	Year          string // YYYY
	GoalID        string
	AsOf          *time.Time
	StreakType    analytics.StreakType
	SuccessMetric analytics.SuccessMetric
	DayPolicy     analytics.DayPolicy
}

func NewYearlySummaryRequest(userID, year string) YearlySummaryRequest {
	return YearlySummaryRequest{
		UserID:        userID,
		Year:          year,
		StreakType:    analytics.StreakTargetMet,
		SuccessMetric: analytics.MetricDaysTracked,
		DayPolicy:     analytics.DayPolicyMerge,
	}
}

func (r YearlySummaryRequest) Options(now time.Time) analytics.Options {
	return engineOptions(r.AsOf, now, r.StreakType, r.SuccessMetric, r.DayPolicy, false)
}

func engineOptions(asOf *time.Time, now time.Time, streak analytics.StreakType, metric analytics.SuccessMetric, policy analytics.DayPolicy, daily bool) analytics.Options {
	anchor := now
	if asOf != nil {
		anchor = *asOf
	}
	return analytics.Options{
		AsOf:                 anchor,
		StreakType:           streak,
		SuccessMetric:        metric,
		DayPolicy:            policy,
		IncludeDailyProgress: daily,
	}
}
