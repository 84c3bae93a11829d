package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ncc-portal/backend/internal/app/models/dto"
	"github.com/ncc-portal/backend/internal/app/services"
	"github.com/ncc-portal/backend/internal/middleware"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
)

// EnrollmentController handles enrollment application operations, both the
// student-facing surface and the admin review surface.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Create submits a new enrollment application for the authenticated caller.
// The owner id is always taken from the verified identity.
// @Summary Submit an enrollment application
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Application fields"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 401 {object} dto.ErrorResponse
// @Router /enrollments [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format"))
		return
	}

	enrollment, err := c.enrollmentService.Create(ctx.Request.Context(), identity.UserID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", identity.UserID).Msg("Enrollment creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, enrollment)
}

// ListMine returns the caller's own enrollments, newest first
// @Summary List the caller's enrollment applications
// @Tags enrollments
// @Produce json
// @Success 200 {array} models.Enrollment
// @Failure 401 {object} dto.ErrorResponse
// @Router /enrollments/my [get]
func (c *EnrollmentController) ListMine(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	enrollments, err := c.enrollmentService.ListByOwner(ctx.Request.Context(), identity.UserID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to list enrollments")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// ListAll returns every enrollment with owner identity attached (admin only)
// @Summary List all enrollment applications
// @Tags admin
// @Produce json
// @Success 200 {array} models.Enrollment
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/enrollments [get]
func (c *EnrollmentController) ListAll(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list all enrollments")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// UpdateStatus records an admin review decision on an enrollment
// @Summary Approve or reject an enrollment application
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.UpdateStatusResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status or id"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown enrollment"
// @Router /admin/enrollments/{id} [patch]
func (c *EnrollmentController) UpdateStatus(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment ID"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid status update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format"))
		return
	}

	resp, err := c.enrollmentService.UpdateStatus(ctx.Request.Context(), id, req.Status, identity.UserID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("enrollmentID", id).Msg("Status update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
