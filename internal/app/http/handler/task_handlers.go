package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintassign/internal/app/dto"
)

func (h *Handler) TasksAutoAssignSuggestions(c *gin.Context) {
	path, ok := h.iterationPath(c, c.Query("iteration_path"))
	if !ok {
		return
	}

	res, err := h.AssignmentSvc.GetAutoAssignSuggestions(c.Request.Context(), path)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) TasksAutoAssignSuggestionsForTeam(c *gin.Context) {
	var body dto.TeamSuggestionsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	path, ok := h.iterationPath(c, body.IterationPath)
	if !ok {
		return
	}

	res, err := h.AssignmentSvc.GetAutoAssignSuggestionsForRoster(c.Request.Context(), path, body.TeamMembers)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// TasksAutoAssign answers 409 when at least one suggestion could not be applied.
func (h *Handler) TasksAutoAssign(c *gin.Context) {
	var body dto.AutoAssignRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	path, ok := h.iterationPath(c, body.IterationPath)
	if !ok {
		return
	}

	applied, err := h.AssignmentSvc.ApplyAutoAssignments(c.Request.Context(), path)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if !applied {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"applied": applied})
}

func (h *Handler) TasksAssign(c *gin.Context) {
	var body dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.TaskID <= 0 || body.AssignedTo == "" {
		h.badRequest(c, "task_id and assigned_to are required")
		return
	}

	ok, err := h.AssignmentSvc.AssignSingleTask(c.Request.Context(), body.TaskID, body.AssignedTo)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": ok})
}

func (h *Handler) TasksTeamMemberTaskCounts(c *gin.Context) {
	path, ok := h.iterationPath(c, c.Query("iteration_path"))
	if !ok {
		return
	}

	res, err := h.AssignmentSvc.GetWeightedTaskCounts(c.Request.Context(), path)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
