package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quolls/internal/controller"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/service"
	"github.com/rs/zerolog/log"
)

type TrackingController struct {
	trackingService service.TrackingService
}

func NewTrackingController(ts service.TrackingService) *TrackingController {
	return &TrackingController{trackingService: ts}
}

// CreateTracking godoc
// @Summary (Admin) Create an assessment tracking entry
// @Description Registers an assessment with an active/inactive flag. Activating an entry deactivates every other one.
// @Tags Admin - Tracking
// @Accept json
// @Produce json
// @Param entry body dto.TrackingUpsertDTO true "Assessment id and status"
// @Security BearerAuth
// @Success 201 {object} dto.TrackingResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/assessments [post]
func (c *TrackingController) CreateTracking(ctx *gin.Context) {
	var req dto.TrackingUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	entry, err := c.trackingService.Create(req)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", req.AssessmentID).Msg("CreateTracking failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// UpdateTracking godoc
// @Summary (Admin) Update a tracking entry's status
// @Tags Admin - Tracking
// @Accept json
// @Produce json
// @Param assessment_id path string true "Assessment identifier"
// @Param entry body dto.TrackingUpdateDTO true "New status"
// @Security BearerAuth
// @Success 200 {object} dto.TrackingResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/assessments/{assessment_id} [put]
func (c *TrackingController) UpdateTracking(ctx *gin.Context) {
	assessmentID := ctx.Param("assessment_id")
	var req dto.TrackingUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	entry, err := c.trackingService.Update(assessmentID, req)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("UpdateTracking failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// GetTracking godoc
// @Summary (Admin) Read one tracking entry
// @Tags Admin - Tracking
// @Produce json
// @Param assessment_id path string true "Assessment identifier"
// @Security BearerAuth
// @Success 200 {object} dto.TrackingResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/assessments/{assessment_id} [get]
func (c *TrackingController) GetTracking(ctx *gin.Context) {
	assessmentID := ctx.Param("assessment_id")
	entry, err := c.trackingService.Get(assessmentID)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("GetTracking failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// ListTracking godoc
// @Summary (Admin) List tracking entries
// @Tags Admin - Tracking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TrackingResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/assessments [get]
func (c *TrackingController) ListTracking(ctx *gin.Context) {
	entries, err := c.trackingService.List()
	if err != nil {
		log.Error().Err(err).Msg("ListTracking failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
