package dto

import "time"

// CreateEnrollmentRequest carries the student-supplied application fields.
// The owner id always comes from the verified token, never from the payload.
type CreateEnrollmentRequest struct {
	CollegeName           string  `json:"college_name"`
	Course                string  `json:"course"`
	YearOfStudy           int     `json:"year_of_study"`
	PreferredWing         string  `json:"preferred_wing"`
	PreviousNCCExperience bool    `json:"previous_ncc_experience"`
	MedicalConditions     *string `json:"medical_conditions,omitempty"`
	EmergencyContact      string  `json:"emergency_contact"`
	EmergencyPhone        string  `json:"emergency_phone"`
	DocumentsUploaded     bool    `json:"documents_uploaded"`
}

// UpdateStatusRequest represents an admin review decision
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusResponse confirms a review decision was recorded
type UpdateStatusResponse struct {
	Message      string    `json:"message"`
	EnrollmentID int64     `json:"enrollment_id"`
	Status       string    `json:"status"`
	ReviewedBy   int64     `json:"reviewed_by"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}
