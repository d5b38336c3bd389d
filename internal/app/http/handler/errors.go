package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sprintassign/internal/app/dto"
	"sprintassign/internal/app/http/middleware"
	"sprintassign/internal/domain"
)

const codeInternal = "INTERNAL_ERROR"

func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		h.Log.Debug("request rejected",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("code", string(de.Code)),
			zap.String("message", de.Message),
		)
		c.JSON(de.HTTPStatus, dto.ErrorResponse{
			Error: dto.Error{
				Code:    string(de.Code),
				Message: de.Message,
			},
		})
		return
	}

	h.Log.Error("internal error",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: dto.Error{
			Code:    codeInternal,
			Message: "internal server error",
		},
	})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: dto.Error{
			Code:    string(domain.ErrorCodeInvalidArgument),
			Message: msg,
		},
	})
}
