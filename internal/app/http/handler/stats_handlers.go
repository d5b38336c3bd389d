package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintassign/internal/app/dto"
)

func (h *Handler) StatsWorkload(c *gin.Context) {
	path, ok := h.iterationPath(c, c.Query("iteration_path"))
	if !ok {
		return
	}

	report, err := h.StatsSvc.GetWorkload(c.Request.Context(), path)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.WorkloadResponse{
		IterationPath:    report.IterationPath,
		AvgWeightedTotal: report.AvgWeightedTotal,
		AvgNewCount:      report.AvgNewCount,
		Developers:       make([]dto.DeveloperWorkload, 0, len(report.Developers)),
	}
	for _, d := range report.Developers {
		resp.Developers = append(resp.Developers, dto.DeveloperWorkload{
			Developer:       d.Developer,
			New:             d.New,
			Active:          d.Active,
			Review:          d.Review,
			Complete:        d.Complete,
			Total:           d.Total,
			WeightedTotal:   d.WeightedTotal,
			CompletionRatio: d.CompletionRatio,
			Overloaded:      d.Overloaded,
		})
	}
	c.JSON(http.StatusOK, resp)
}
