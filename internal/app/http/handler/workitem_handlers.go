package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintassign/internal/app/dto"
	"sprintassign/internal/domain/workitem"
)

func (h *Handler) WorkItemsSync(c *gin.Context) {
	var body dto.SyncWorkItemsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}

	items := make([]workitem.WorkItem, 0, len(body.WorkItems))
	for _, it := range body.WorkItems {
		path, ok := h.iterationPath(c, it.IterationPath)
		if !ok {
			return
		}
		items = append(items, workitem.WorkItem{
			ID:            it.ID,
			Title:         it.Title,
			Status:        it.Status,
			Type:          it.Type,
			Priority:      it.Priority,
			AssignedTo:    it.AssignedTo,
			IterationPath: path,
		})
	}

	n, err := h.WorkItemSvc.Sync(c.Request.Context(), items)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": n})
}

func (h *Handler) WorkItemsGet(c *gin.Context) {
	path, ok := h.iterationPath(c, c.Query("iteration_path"))
	if !ok {
		return
	}

	list, err := h.WorkItemSvc.List(c.Request.Context(), path)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := struct {
		IterationPath string         `json:"iteration_path"`
		WorkItems     []dto.WorkItem `json:"work_items"`
	}{
		IterationPath: path,
		WorkItems:     make([]dto.WorkItem, 0, len(list)),
	}
	for _, it := range list {
		resp.WorkItems = append(resp.WorkItems, dto.WorkItem{
			ID:            it.ID,
			Title:         it.Title,
			Status:        it.Status,
			Type:          it.Type,
			Priority:      it.Priority,
			AssignedTo:    it.AssignedTo,
			IterationPath: it.IterationPath,
		})
	}
	c.JSON(http.StatusOK, resp)
}
