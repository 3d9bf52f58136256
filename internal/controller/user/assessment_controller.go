package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quolls/internal/controller"
	"github.com/lshigami/Quolls/internal/dto"
	"github.com/lshigami/Quolls/internal/middleware"
	"github.com/lshigami/Quolls/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	sessionService service.SessionService
	scoringService service.ScoringService
	resultService  service.ResultService
}

func NewAssessmentController(ss service.SessionService, sc service.ScoringService, rs service.ResultService) *AssessmentController {
	return &AssessmentController{
		sessionService: ss,
		scoringService: sc,
		resultService:  rs,
	}
}

// ReadAssessment godoc
// @Summary Open or resume an assessment attempt
// @Description Returns the question-set snapshot for the caller's attempt: freshly frozen for a new attempt, the stored snapshot for an ongoing one, or a new generation after expiry/submission subject to the retake budget. With editMode=true the definition is previewed statelessly.
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment identifier"
// @Param contentId query string true "Content identifier (not required in edit mode)"
// @Param versionKey query string true "Version key (not required in edit mode)"
// @Param editMode query bool false "Preview the live authoring copy"
// @Security BearerAuth
// @Success 200 {object} dto.QuestionSetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Retake attempts crossed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/{assessment_id}/read [get]
func (c *AssessmentController) ReadAssessment(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	assessmentID := ctx.Param("assessment_id")
	contentID := ctx.Query("contentId")
	versionKey := ctx.Query("versionKey")
	editMode, _ := strconv.ParseBool(ctx.Query("editMode"))

	snap, err := c.sessionService.OpenSession(ctx.Request.Context(), userID, assessmentID, contentID, versionKey, editMode)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Str("assessmentID", assessmentID).Msg("ReadAssessment failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionSetResponse{QuestionSet: snap})
}

// SubmitAssessment godoc
// @Summary Submit answers for an attempt
// @Description Validates the submission against the frozen snapshot (window, sections, questions) and computes weighted-option section scores. The result is persisted atomically with the SUBMITTED transition.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param editMode query bool false "Score against the live authoring copy without persisting"
// @Param submission body dto.SubmitRequestDTO true "Submitted sections and marked options"
// @Security BearerAuth
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Submission window expired"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/submit [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	var req dto.SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	editMode, _ := strconv.ParseBool(ctx.Query("editMode"))

	result, err := c.scoringService.Submit(ctx.Request.Context(), userID, req, editMode)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Str("assessmentID", req.Identifier).Msg("SubmitAssessment failed")
		controller.RespondError(ctx, err)
		return
	}

	resp := dto.SubmitResponse{Result: make([]dto.SectionResultDTO, 0, len(result.Sections))}
	for _, sec := range result.Sections {
		resp.Result = append(resp.Result, dto.SectionResultDTO{
			Identifier:        sec.Identifier,
			PrimaryCategory:   sec.PrimaryCategory,
			Name:              sec.Name,
			PassPercentage:    sec.PassPercentage,
			MaxUserScore:      sec.MaxUserScore,
			MaxWeightedScore:  sec.MaxWeightedScore,
			UserWeightedScore: sec.UserWeightedScore,
			Blank:             sec.Blank,
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReadAssessmentResult godoc
// @Summary Read the persisted result of a submitted attempt
// @Description Returns the stored submission outcome, or statusIsInProgress when the latest attempt has not been submitted yet.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body dto.ResultReadRequestDTO true "Assessment, batch and course identifiers"
// @Security BearerAuth
// @Success 200 {object} dto.ResultReadResponse
// @Failure 400 {object} dto.ErrorResponse "No attempt data for user"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments/result/read [post]
func (c *AssessmentController) ReadAssessmentResult(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	var req dto.ResultReadRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ReadAssessmentResult: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.resultService.ReadResult(ctx.Request.Context(), userID, req)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Str("assessmentID", req.AssessmentID).Msg("ReadAssessmentResult failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
