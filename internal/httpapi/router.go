package httpapi

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// UserHeader names the caller. There is no authentication; requests without
// it act as Deps.DefaultUserID.
const UserHeader = "X-User-ID"

const userKey = "uid"

type Deps struct {
	Goals     service.GoalService
	Progress  service.ProgressService
	Summaries service.SummaryService

	DefaultUserID string
	StreakType    analytics.StreakType
	SuccessMetric analytics.SuccessMetric

	// AccessLog receives one line per request. Nil disables it.
	AccessLog io.Writer
}

type handler struct {
	Deps
}

func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if deps.AccessLog != nil {
		router.Use(gin.LoggerWithConfig(gin.LoggerConfig{Output: deps.AccessLog, SkipPaths: []string{"/health"}}))
	}
	router.Use(cors.New(corsConfig()))
	router.Use(identify(deps.DefaultUserID))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "goaltrack-api"})
	})

	h := &handler{Deps: deps}
	api := router.Group("/api")
	{
		goals := api.Group("/goals")
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalId", h.getGoal)
		goals.PUT("/:goalId", h.updateGoal)
		goals.DELETE("/:goalId", h.deleteGoal)

		progress := api.Group("/progress")
		progress.POST("", h.recordProgress)
		progress.GET("", h.listProgressByMonth)
		progress.GET("/:goalId", h.listProgressForGoal)
		progress.PUT("/:progressId", h.updateProgress)
		progress.DELETE("/:progressId", h.deleteProgress)

		summary := api.Group("/summary")
		summary.GET("/monthly", h.monthlySummary)
		summary.GET("/yearly", h.yearlySummary)
	}
	return router
}

// corsConfig lets browser clients on any origin call the API and name
// themselves through UserHeader.
func corsConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", UserHeader},
		MaxAge:          12 * time.Hour,
	}
}

func identify(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(UserHeader))
		if uid == "" {
			uid = defaultUserID
		}
		c.Set(userKey, uid)
		c.Next()
	}
}
