package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintassign/internal/app/dto"
	"sprintassign/internal/domain/member"
)

func (h *Handler) MemberSetIsActive(c *gin.Context) {
	var body struct {
		MemberID string `json:"member_id"`
		IsActive bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.MemberID == "" {
		h.badRequest(c, "member_id is required")
		return
	}

	m, err := h.MemberSvc.SetMemberActive(c.Request.Context(), body.MemberID, body.IsActive)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := struct {
		Member dto.Member `json:"member"`
	}{
		Member: toMemberDTO(m),
	}
	c.JSON(http.StatusOK, resp)
}

// MemberRoster lists the active members recommendations may target.
func (h *Handler) MemberRoster(c *gin.Context) {
	list, err := h.MemberSvc.Roster(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := struct {
		Members []dto.Member `json:"members"`
	}{
		Members: make([]dto.Member, 0, len(list)),
	}
	for _, m := range list {
		resp.Members = append(resp.Members, toMemberDTO(m))
	}
	c.JSON(http.StatusOK, resp)
}

func toMemberDTO(m member.Member) dto.Member {
	return dto.Member{
		MemberID:    m.ID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		TeamName:    m.TeamName,
		IsActive:    m.IsActive,
	}
}
