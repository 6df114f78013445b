package applicant

import (
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

// CreateApplicantRequest - DTO for registering an applicant against a vacancy
type CreateApplicantRequest struct {
	FirstName   string           `json:"first_name" validate:"required"`
	LastName    string           `json:"last_name" validate:"required"`
	Email       string           `json:"email" validate:"required,email"`
	PhoneNumber kernel.Phone     `json:"phone_number"`
	UserID      kernel.UserID    `json:"user_id"`
	VacancyID   kernel.VacancyID `json:"vacancy_id" validate:"required"`
}

// UpdateApplicantRequest - DTO for updating applicant contact data
type UpdateApplicantRequest struct {
	ID          kernel.ApplicantID `json:"id" validate:"required"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Email       string             `json:"email"`
	PhoneNumber kernel.Phone       `json:"phone_number"`
}

// SearchApplicantsRequest - DTO for searching applicants; all fields
// optional, AND-combined
type SearchApplicantsRequest struct {
	FullName  string   `json:"full_name,omitempty"`
	Email     string   `json:"email,omitempty"`
	MinScore  *float64 `json:"min_score,omitempty"`
	MaxScore  *float64 `json:"max_score,omitempty"`
	IsDeleted *bool    `json:"is_deleted,omitempty"`
}

// ApplicantResponse - DTO for returning applicant data
type ApplicantResponse struct {
	ID          kernel.ApplicantID `json:"id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	FullName    string             `json:"full_name"`
	Email       string             `json:"email"`
	PhoneNumber kernel.Phone       `json:"phone_number"`
	UserID      kernel.UserID      `json:"user_id"`
	VacancyID   kernel.VacancyID   `json:"vacancy_id"`
	TestScore   float64            `json:"test_score"`
	HasCV       bool               `json:"has_cv"`
	IsDeleted   bool               `json:"is_deleted"`
	CreatedDate time.Time          `json:"created_date"`
}

// TestResultResponse - DTO carrying one applicant's screening score
type TestResultResponse struct {
	ApplicantID kernel.ApplicantID `json:"applicant_id"`
	TestScore   float64            `json:"test_score"`
}

// VacancyTestResultResponse - one row of a vacancy-wide score listing
type VacancyTestResultResponse struct {
	ApplicantID kernel.ApplicantID `json:"applicant_id"`
	FullName    string             `json:"full_name"`
	TestScore   float64            `json:"test_score"`
}

// CVFileResponse - DTO for returning a stored CV. FileContent is
// base64-encoded by the JSON marshaller.
type CVFileResponse struct {
	FileName    string `json:"file_name"`
	FileContent []byte `json:"file_content"`
}
