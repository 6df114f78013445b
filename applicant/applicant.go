// Package applicant holds the applicant aggregate: candidates applying to a
// vacancy, their screening score and uploaded CV.
package applicant

import (
	"strings"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
)

// Applicant is a candidate who applied to a vacancy. The CVPath column stores
// only the generated file name; the resources directory is configuration.
// Applicants are soft-deleted so screening history survives removal.
type Applicant struct {
	ID          kernel.ApplicantID `db:"id" json:"id"`
	FirstName   string             `db:"first_name" json:"first_name"`
	LastName    string             `db:"last_name" json:"last_name"`
	Email       string             `db:"email" json:"email"`
	PhoneNumber kernel.Phone       `db:"phone_number" json:"phone_number"`
	UserID      kernel.UserID      `db:"user_id" json:"user_id"`
	VacancyID   kernel.VacancyID   `db:"vacancy_id" json:"vacancy_id"`
	TestScore   float64            `db:"test_score" json:"test_score"`
	CVPath      string             `db:"cv_path" json:"-"`

	storage.Audit
}

func (a *Applicant) TableName() string { return "applicants" }

func (a *Applicant) EntityID() kernel.ApplicantID { return a.ID }

func (a *Applicant) SetEntityID(id kernel.ApplicantID) { a.ID = id }

// FullName joins the name parts for display and search.
func (a *Applicant) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
