package vacancy

import (
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

// CreateVacancyRequest - DTO for creating a new vacancy
type CreateVacancyRequest struct {
	Title         string            `json:"title" validate:"required"`
	Description   string            `json:"description"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	IsActive      bool              `json:"is_active"`
	CategoryID    kernel.CategoryID `json:"category_id"`
	QuestionCount int               `json:"question_count"`
}

// UpdateVacancyRequest - DTO for updating an existing vacancy
type UpdateVacancyRequest struct {
	ID            kernel.VacancyID  `json:"id" validate:"required"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	IsActive      bool              `json:"is_active"`
	CategoryID    kernel.CategoryID `json:"category_id"`
	QuestionCount int               `json:"question_count"`
}

// SetVacancyStatusRequest - DTO for toggling a vacancy's active flag
type SetVacancyStatusRequest struct {
	ID       kernel.VacancyID `json:"id" validate:"required"`
	IsActive bool             `json:"is_active"`
}

// FilterVacanciesRequest - DTO for filtering vacancies; all fields optional,
// AND-combined
type FilterVacanciesRequest struct {
	Title         string     `json:"title,omitempty"`
	Category      string     `json:"category,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}

// VacancyResponse - DTO for returning vacancy data
type VacancyResponse struct {
	ID            kernel.VacancyID  `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	IsActive      bool              `json:"is_active"`
	CategoryID    kernel.CategoryID `json:"category_id"`
	CategoryName  string            `json:"category_name,omitempty"`
	QuestionCount int               `json:"question_count"`
	CreatedDate   time.Time         `json:"created_date"`
	ModifiedDate  time.Time         `json:"modified_date"`
}

// CategoryResponse - DTO for returning category reference data
type CategoryResponse struct {
	ID          kernel.CategoryID `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
}
