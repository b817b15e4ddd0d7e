package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/gin-gonic/gin"
)

// reportQuery holds the engine options shared by both summary routes.
type reportQuery struct {
	asOf          *time.Time
	streakType    analytics.StreakType
	successMetric analytics.SuccessMetric
	dayPolicy     analytics.DayPolicy
}

func (h *handler) parseReportQuery(c *gin.Context) (reportQuery, error) {
	q := reportQuery{
		streakType:    h.StreakType,
		successMetric: h.SuccessMetric,
		dayPolicy:     analytics.DayPolicy(c.Query("dayPolicy")),
	}
	if v := c.Query("streakType"); v != "" {
		q.streakType = analytics.StreakType(v)
	}
	if v := c.Query("successMetric"); v != "" {
		q.successMetric = analytics.SuccessMetric(v)
	}
	if v := c.Query("asOf"); v != "" {
		t, err := domain.ParseDay(v)
		if err != nil {
			return q, err
		}
		q.asOf = &t
	}
	return q, nil
}

// GET /api/summary/monthly?month=YYYY-MM
func (h *handler) monthlySummary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		badRequest(c, "month parameter is required")
		return
	}
	q, err := h.parseReportQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	req := app.NewMonthlySummaryRequest(c.GetString(userKey), month)
	req.GoalID = c.Query("goalId")
	req.AsOf = q.asOf
	req.StreakType = q.streakType
	req.SuccessMetric = q.successMetric
	req.DayPolicy = q.dayPolicy
	if v := c.Query("includeDaily"); v != "" {
		if req.IncludeDailyProgress, err = strconv.ParseBool(v); err != nil {
			badRequest(c, "includeDaily must be true or false")
			return
		}
	}

	report, err := h.Summaries.Monthly(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/summary/yearly?year=YYYY
func (h *handler) yearlySummary(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		badRequest(c, "year parameter is required")
		return
	}
	q, err := h.parseReportQuery(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	req := app.NewYearlySummaryRequest(c.GetString(userKey), year)
	req.GoalID = c.Query("goalId")
	req.AsOf = q.asOf
	req.StreakType = q.streakType
	req.SuccessMetric = q.successMetric
	req.DayPolicy = q.dayPolicy

	summary, err := h.Summaries.Yearly(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
