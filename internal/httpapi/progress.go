package httpapi

import (
	"net/http"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/gin-gonic/gin"
)

// POST /api/progress
func (h *handler) recordProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	date, err := domain.ParseDay(req.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	p := &domain.ProgressEntry{
		GoalID:       req.GoalID,
		Date:         date,
		MinutesSpent: *req.MinutesSpent,
		Note:         req.Note,
	}
	if err := h.Progress.Record(c.Request.Context(), c.GetString(userKey), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.NewProgressView(p))
}

// GET /api/progress?month=YYYY-MM
func (h *handler) listProgressByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		badRequest(c, "month parameter is required")
		return
	}
	entries, err := h.Progress.ListByMonth(c.Request.Context(), c.GetString(userKey), month)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewProgressViews(entries))
}

// GET /api/progress/:goalId[?month=YYYY-MM]
func (h *handler) listProgressForGoal(c *gin.Context) {
	entries, err := h.Progress.ListByGoal(c.Request.Context(), c.GetString(userKey), c.Param("goalId"), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewProgressViews(entries))
}

// PUT /api/progress/:progressId
func (h *handler) updateProgress(c *gin.Context) {
	var req progressPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	date, err := parseOptionalDay(req.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	patch := app.ProgressPatch{Date: date, MinutesSpent: req.MinutesSpent, Note: req.Note}
	p, err := h.Progress.Update(c.Request.Context(), c.GetString(userKey), c.Param("progressId"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewProgressView(p))
}

// DELETE /api/progress/:progressId
func (h *handler) deleteProgress(c *gin.Context) {
	if err := h.Progress.Delete(c.Request.Context(), c.GetString(userKey), c.Param("progressId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress entry deleted"})
}
