package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sprintassign/internal/app/http/handler"
	"sprintassign/internal/app/http/middleware"
)

// Instrumentation is the optional metrics surface mounted by the router.
type Instrumentation interface {
	Middleware() gin.HandlerFunc
	Handler() gin.HandlerFunc
}

func NewRouter(h *handler.Handler, log *zap.Logger, inst Instrumentation) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)
	if inst != nil {
		r.Use(inst.Middleware())
		r.GET("/metrics", inst.Handler())
	}

	r.GET("/health", h.Health)

	r.POST("/team/add", h.TeamAdd)
	r.GET("/team/get", h.TeamGet)

	r.POST("/members/setIsActive", h.MemberSetIsActive)
	r.GET("/members/roster", h.MemberRoster)

	r.POST("/workItems/sync", h.WorkItemsSync)
	r.GET("/workItems/get", h.WorkItemsGet)

	tasks := r.Group("/tasks")
	tasks.GET("/autoAssignSuggestions", h.TasksAutoAssignSuggestions)
	tasks.POST("/autoAssignSuggestions/team", h.TasksAutoAssignSuggestionsForTeam)
	tasks.POST("/autoAssign", h.TasksAutoAssign)
	tasks.POST("/assign", h.TasksAssign)
	tasks.GET("/teamMemberTaskCounts", h.TasksTeamMemberTaskCounts)

	r.GET("/stats/workload", h.StatsWorkload)

	return r
}
