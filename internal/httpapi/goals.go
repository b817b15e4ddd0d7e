package httpapi

import (
	"net/http"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/gin-gonic/gin"
)

// POST /api/goals
func (h *handler) createGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	start, err := domain.ParseDay(req.StartDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	end, err := parseOptionalDay(req.EndDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	g := &domain.Goal{
		UserID:              c.GetString(userKey),
		Title:               req.Title,
		Description:         req.Description,
		TargetMinutesPerDay: req.TargetMinutesPerDay,
		StartDate:           start,
		EndDate:             end,
		Tags:                req.Tags,
	}
	if err := h.Goals.Create(c.Request.Context(), g); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.NewGoalView(g))
}

// GET /api/goals
func (h *handler) listGoals(c *gin.Context) {
	goals, err := h.Goals.List(c.Request.Context(), c.GetString(userKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewGoalViews(goals))
}

// GET /api/goals/:goalId
func (h *handler) getGoal(c *gin.Context) {
	g, err := h.Goals.GetByID(c.Request.Context(), c.GetString(userKey), c.Param("goalId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewGoalView(g))
}

// PUT /api/goals/:goalId
func (h *handler) updateGoal(c *gin.Context) {
	var req goalPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	start, err := parseOptionalDay(req.StartDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	end, err := parseOptionalDay(req.EndDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	patch := app.GoalPatch{
		Title:               req.Title,
		Description:         req.Description,
		TargetMinutesPerDay: req.TargetMinutesPerDay,
		StartDate:           start,
		EndDate:             end,
		ClearEndDate:        req.ClearEndDate,
	}
	if req.Tags != nil {
		if len(*req.Tags) == 0 {
			patch.ClearTags = true
		} else {
			patch.Tags = *req.Tags
		}
	}

	g, err := h.Goals.Update(c.Request.Context(), c.GetString(userKey), c.Param("goalId"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.NewGoalView(g))
}

// DELETE /api/goals/:goalId
func (h *handler) deleteGoal(c *gin.Context) {
	if err := h.Goals.Delete(c.Request.Context(), c.GetString(userKey), c.Param("goalId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
