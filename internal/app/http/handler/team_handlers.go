package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintassign/internal/app/dto"
	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/team"
)

func (h *Handler) TeamAdd(c *gin.Context) {
	var body dto.Team
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.TeamName == "" {
		h.badRequest(c, "team_name is required")
		return
	}

	t := team.Team{
		Name:    body.TeamName,
		Members: make([]member.Member, 0, len(body.Members)),
	}
	for _, m := range body.Members {
		t.Members = append(t.Members, member.Member{
			ID:          m.MemberID,
			DisplayName: m.DisplayName,
			Email:       m.Email,
			IsActive:    m.IsActive,
		})
	}

	res, err := h.TeamSvc.AddTeam(c.Request.Context(), t)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := struct {
		Team dto.Team `json:"team"`
	}{
		Team: toTeamDTO(res),
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) TeamGet(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		h.badRequest(c, "team_name is required")
		return
	}

	res, err := h.TeamSvc.GetTeam(c.Request.Context(), teamName)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTeamDTO(res))
}

func toTeamDTO(t team.Team) dto.Team {
	out := dto.Team{
		TeamName: t.Name,
		Members:  make([]dto.TeamMember, 0, len(t.Members)),
	}
	for _, m := range t.Members {
		out.Members = append(out.Members, dto.TeamMember{
			MemberID:    m.ID,
			DisplayName: m.DisplayName,
			Email:       m.Email,
			IsActive:    m.IsActive,
		})
	}
	return out
}
