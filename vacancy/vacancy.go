package vacancy

import (
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
)

// Vacancy is a job opening accepting applications between StartDate and
// EndDate. Vacancies are hard-deleted, unlike applicants and users.
type Vacancy struct {
	ID            kernel.VacancyID  `db:"id" json:"id"`
	Title         string            `db:"title" json:"title"`
	Description   string            `db:"description" json:"description"`
	StartDate     time.Time         `db:"start_date" json:"start_date"`
	EndDate       time.Time         `db:"end_date" json:"end_date"`
	IsActive      bool              `db:"is_active" json:"is_active"`
	CategoryID    kernel.CategoryID `db:"category_id" json:"category_id"`
	QuestionCount int               `db:"question_count" json:"question_count"`
	storage.Audit
}

func (*Vacancy) TableName() string { return "vacancies" }

func (v *Vacancy) EntityID() kernel.VacancyID      { return v.ID }
func (v *Vacancy) SetEntityID(id kernel.VacancyID) { v.ID = id }

// IsOpenAt reports whether the vacancy accepts applications at t.
func (v *Vacancy) IsOpenAt(t time.Time) bool {
	return v.IsActive && !t.Before(v.StartDate) && !t.After(v.EndDate)
}

// Category is static reference data grouping vacancies and screening
// questions.
type Category struct {
	ID          kernel.CategoryID `db:"id" json:"id"`
	Name        string            `db:"name" json:"name"`
	Description string            `db:"description" json:"description"`
	storage.Audit
}

func (*Category) TableName() string { return "categories" }

func (c *Category) EntityID() kernel.CategoryID      { return c.ID }
func (c *Category) SetEntityID(id kernel.CategoryID) { c.ID = id }
