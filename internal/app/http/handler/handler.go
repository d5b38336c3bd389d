package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sprintassign/internal/domain/assignment"
	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/stats"
	"sprintassign/internal/domain/team"
	"sprintassign/internal/domain/workitem"
)

type Handler struct {
	TeamSvc       team.Service
	MemberSvc     member.Service
	WorkItemSvc   workitem.Service
	AssignmentSvc assignment.Service
	StatsSvc      stats.Service
	Log           *zap.Logger
}

func New(
	teamSvc team.Service,
	memberSvc member.Service,
	workItemSvc workitem.Service,
	assignmentSvc assignment.Service,
	statsSvc stats.Service,
	log *zap.Logger,
) *Handler {
	return &Handler{
		TeamSvc:       teamSvc,
		MemberSvc:     memberSvc,
		WorkItemSvc:   workItemSvc,
		AssignmentSvc: assignmentSvc,
		StatsSvc:      statsSvc,
		Log:           log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// iterationPath reads and normalizes a query or body iteration path,
// answering 400 itself when it is unusable.
func (h *Handler) iterationPath(c *gin.Context, raw string) (string, bool) {
	p, err := workitem.NormalizeIterationPath(raw)
	if err != nil {
		h.writeError(c, err)
		return "", false
	}
	return p, true
}
