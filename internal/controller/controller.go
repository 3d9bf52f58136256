package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/service"
)

// RespondError translates a service failure into the structured error
// envelope. Named taxonomy errors keep their code and status; everything else
// is surfaced as a generic internal failure so no raw error detail leaks.
func RespondError(ctx *gin.Context, err error) {
	if se := service.AsServiceError(err); se != nil {
		ctx.JSON(se.Status, dto.ErrorResponse{Code: se.Code, Message: se.Msg})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
}
