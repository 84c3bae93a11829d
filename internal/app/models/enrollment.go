package models

import (
	"time"
)

// EnrollmentStatus tracks an application through review.
// pending is the initial state; approved and rejected are terminal in the
// normal flow, though the data layer does not lock re-transitions.
type EnrollmentStatus string

const (
	StatusPending  EnrollmentStatus = "pending"
	StatusApproved EnrollmentStatus = "approved"
	StatusRejected EnrollmentStatus = "rejected"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s string) bool {
	switch EnrollmentStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// EnrollmentOwner is the minimal owner identity joined into admin listings.
type EnrollmentOwner struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
}

// Enrollment defines the enrollment model based on the 'enrollments' table
type Enrollment struct {
	ID                    int64            `json:"id" db:"id"`
	UserID                int64            `json:"user_id" db:"user_id"`
	ApplicationNumber     string           `json:"application_number" db:"application_number"`
	Status                EnrollmentStatus `json:"status" db:"status"`
	CollegeName           string           `json:"college_name" db:"college_name"`
	Course                string           `json:"course" db:"course"`
	YearOfStudy           int              `json:"year_of_study" db:"year_of_study"`
	PreferredWing         string           `json:"preferred_wing" db:"preferred_wing"`
	PreviousNCCExperience bool             `json:"previous_ncc_experience" db:"previous_ncc_experience"`
	MedicalConditions     *string          `json:"medical_conditions,omitempty" db:"medical_conditions"`
	EmergencyContact      string           `json:"emergency_contact" db:"emergency_contact"`
	EmergencyPhone        string           `json:"emergency_phone" db:"emergency_phone"`
	DocumentsUploaded     bool             `json:"documents_uploaded" db:"documents_uploaded"`
	AdminNotes            *string          `json:"admin_notes,omitempty" db:"admin_notes"`
	SubmittedAt           time.Time        `json:"submitted_at" db:"submitted_at"`
	ReviewedAt            *time.Time       `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewedBy            *int64           `json:"reviewed_by,omitempty" db:"reviewed_by"`
	User                  *EnrollmentOwner `json:"user,omitempty"` // joined, no db tag
}
