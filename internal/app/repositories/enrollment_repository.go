package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
	"github.com/ncc-portal/backend/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var enrollmentColumns = []string{
	"id", "user_id", "application_number", "status", "college_name", "course",
	"year_of_study", "preferred_wing", "previous_ncc_experience",
	"medical_conditions", "emergency_contact", "emergency_phone",
	"documents_uploaded", "admin_notes", "submitted_at", "reviewed_at", "reviewed_by",
}

// Create inserts a new enrollment and fills in the generated id and
// submission timestamp. The application number must already be set; a
// duplicate number surfaces as the raw unique-violation error so the caller
// can retry with a fresh one.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("user_id", "application_number", "status", "college_name", "course",
			"year_of_study", "preferred_wing", "previous_ncc_experience",
			"medical_conditions", "emergency_contact", "emergency_phone", "documents_uploaded").
		Values(e.UserID, e.ApplicationNumber, e.Status, e.CollegeName, e.Course,
			e.YearOfStudy, e.PreferredWing, e.PreviousNCCExperience,
			e.MedicalConditions, e.EmergencyContact, e.EmergencyPhone, e.DocumentsUploaded).
		Suffix("RETURNING id, submitted_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.SubmittedAt); err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// ListByUserID returns the owner's enrollments, most recent submission first
func (r *EnrollmentRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error querying enrollments")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	return scanEnrollments(rows, false)
}

// ListAllWithOwners returns every enrollment joined with the minimal owner
// identity fields, most recent submission first
func (r *EnrollmentRepository) ListAllWithOwners(ctx context.Context) ([]*models.Enrollment, error) {
	cols := make([]string, 0, len(enrollmentColumns)+3)
	for _, c := range enrollmentColumns {
		cols = append(cols, "e."+c)
	}
	cols = append(cols, "u.full_name", "u.email", "u.phone")

	sql, args, err := r.sb.Select(cols...).
		From("enrollments e").
		Join("users u ON e.user_id = u.id").
		OrderBy("e.submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying all enrollments")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	return scanEnrollments(rows, true)
}

// UpdateStatus records a review decision, stamping reviewed_at and
// reviewed_by. An unknown id returns ErrEnrollmentNotFound rather than the
// silent zero-row update.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, reviewerID int64, reviewedAt time.Time) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("status", status).
		Set("reviewed_at", reviewedAt).
		Set("reviewed_by", reviewerID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error updating enrollment status")
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

func scanEnrollments(rows pgx.Rows, withOwner bool) ([]*models.Enrollment, error) {
	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{}
		dest := []interface{}{
			&e.ID, &e.UserID, &e.ApplicationNumber, &e.Status, &e.CollegeName, &e.Course,
			&e.YearOfStudy, &e.PreferredWing, &e.PreviousNCCExperience,
			&e.MedicalConditions, &e.EmergencyContact, &e.EmergencyPhone,
			&e.DocumentsUploaded, &e.AdminNotes, &e.SubmittedAt, &e.ReviewedAt, &e.ReviewedBy,
		}
		owner := &models.EnrollmentOwner{}
		if withOwner {
			dest = append(dest, &owner.FullName, &owner.Email, &owner.Phone)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if withOwner {
			owner.ID = e.UserID
			e.User = owner
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}
	return enrollments, nil
}
