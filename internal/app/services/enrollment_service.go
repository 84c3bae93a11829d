package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/models/dto"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
	"github.com/ncc-portal/backend/internal/pkg/dberrors"
)

// EnrollmentStore is the persistence surface the lifecycle manager needs.
type EnrollmentStore interface {
	Create(ctx context.Context, e *models.Enrollment) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	ListAllWithOwners(ctx context.Context) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, reviewerID int64, reviewedAt time.Time) error
}

// EnrollmentService owns the enrollment state machine and its CRUD surface
type EnrollmentService interface {
	Create(ctx context.Context, ownerID int64, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Enrollment, error)
	ListAll(ctx context.Context) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id int64, status string, reviewerID int64) (*dto.UpdateStatusResponse, error)
}

type enrollmentService struct {
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		logger:      logger,
	}
}

// validateCreateRequest checks each required field in order so the first
// missing one is named in the error.
func validateCreateRequest(req *dto.CreateEnrollmentRequest) error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"college_name", req.CollegeName != ""},
		{"course", req.Course != ""},
		{"year_of_study", req.YearOfStudy > 0},
		{"preferred_wing", req.PreferredWing != ""},
		{"emergency_contact", req.EmergencyContact != ""},
		{"emergency_phone", req.EmergencyPhone != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return apperrors.NewMissingFieldError(c.field)
		}
	}
	return nil
}

const (
	applicationNumberAttempts   = 3
	applicationNumberConstraint = "enrollments_application_number_key"
)

// generateApplicationNumber derives a time-based application number. The
// first attempt matches the portal's historical NCC<millis> format; retries
// after a collision switch to nanosecond precision.
func generateApplicationNumber(attempt int) string {
	if attempt == 0 {
		return fmt.Sprintf("NCC%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("NCC%d", time.Now().UnixNano())
}

// Create validates the request, assigns a fresh application number and stores
// the enrollment with status pending. The owner id comes from the verified
// caller identity, never from the payload. Validation runs before any
// persistence attempt.
func (s *enrollmentService) Create(ctx context.Context, ownerID int64, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	e := &models.Enrollment{
		UserID:                ownerID,
		Status:                models.StatusPending,
		CollegeName:           req.CollegeName,
		Course:                req.Course,
		YearOfStudy:           req.YearOfStudy,
		PreferredWing:         req.PreferredWing,
		PreviousNCCExperience: req.PreviousNCCExperience,
		MedicalConditions:     req.MedicalConditions,
		EmergencyContact:      req.EmergencyContact,
		EmergencyPhone:        req.EmergencyPhone,
		DocumentsUploaded:     req.DocumentsUploaded,
	}

	var err error
	for attempt := 0; attempt < applicationNumberAttempts; attempt++ {
		e.ApplicationNumber = generateApplicationNumber(attempt)
		err = s.enrollments.Create(ctx, e)
		if err == nil {
			s.logger.Info().
				Int64("userID", ownerID).
				Str("applicationNumber", e.ApplicationNumber).
				Msg("Enrollment created")
			return e, nil
		}
		if !dberrors.IsDuplicateConstraintError(err, applicationNumberConstraint) {
			return nil, err
		}
		s.logger.Warn().
			Str("applicationNumber", e.ApplicationNumber).
			Msg("Application number collision, retrying")
	}
	return nil, fmt.Errorf("could not assign a unique application number: %w", err)
}

// ListByOwner returns the caller's own enrollments, newest submission first
func (s *enrollmentService) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Enrollment, error) {
	return s.enrollments.ListByUserID(ctx, ownerID)
}

// ListAll returns every enrollment with owner identity attached (admin only,
// enforced at the route gate)
func (s *enrollmentService) ListAll(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollments.ListAllWithOwners(ctx)
}

// UpdateStatus records a review decision. Status must be one of the three
// enum values; the prior state is not re-checked, so an admin may re-issue a
// decision on a non-pending enrollment.
func (s *enrollmentService) UpdateStatus(ctx context.Context, id int64, status string, reviewerID int64) (*dto.UpdateStatusResponse, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	reviewedAt := time.Now()
	if err := s.enrollments.UpdateStatus(ctx, id, models.EnrollmentStatus(status), reviewerID, reviewedAt); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("enrollmentID", id).
		Str("status", status).
		Int64("reviewedBy", reviewerID).
		Msg("Enrollment status updated")

	return &dto.UpdateStatusResponse{
		Message:      "Status updated successfully",
		EnrollmentID: id,
		Status:       status,
		ReviewedBy:   reviewerID,
		ReviewedAt:   reviewedAt,
	}, nil
}
