package main

import (
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/auth"
	"github.com/CavidAtamoghlanov/vacancy-management/iam/user"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/screening"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

// seedReferenceData loads the memory backend with the same starter rows a
// fresh database migration would carry. Postgres deployments get these from
// migrations instead.
func seedReferenceData(mem *storage.MemoryBackend) {
	now := time.Now()
	in30Days := now.AddDate(0, 1, 0)

	mem.Seed(&user.Role{ID: 1, Name: auth.RoleAdmin, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&user.Role{ID: 2, Name: auth.RoleUser, Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&user.User{ID: 1, UserName: "admin", Email: "admin@domain.com", Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&user.User{ID: 2, UserName: "john.doe", Email: "user@domain.com", Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&user.UserRole{ID: 1, UserID: 1, RoleID: 1, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&user.UserRole{ID: 2, UserID: 2, RoleID: 2, Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&vacancy.Category{ID: 1, Name: "Software", Description: "Software Development Jobs", Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&vacancy.Category{ID: 2, Name: "Marketing", Description: "Marketing Jobs", Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&vacancy.Vacancy{
		ID: 1, Title: "Software Engineer", Description: "Developing software solutions",
		StartDate: now, EndDate: in30Days, IsActive: true, CategoryID: 1, QuestionCount: 5,
		Audit: storage.Audit{CreatedDate: now},
	})
	mem.Seed(&vacancy.Vacancy{
		ID: 2, Title: "Marketing Specialist", Description: "Creating marketing campaigns",
		StartDate: now, EndDate: in30Days, IsActive: true, CategoryID: 2, QuestionCount: 4,
		Audit: storage.Audit{CreatedDate: now},
	})

	mem.Seed(&screening.Question{ID: 1, Text: "What is Go?", Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&screening.Question{ID: 2, Text: "What is Marketing?", Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&screening.AnswerOption{ID: 1, QuestionID: 1, Text: "Programming Language", IsCorrect: true, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&screening.AnswerOption{ID: 2, QuestionID: 1, Text: "A Framework", IsCorrect: false, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&screening.AnswerOption{ID: 3, QuestionID: 2, Text: "Field of Business", IsCorrect: true, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&screening.AnswerOption{ID: 4, QuestionID: 2, Text: "A Programming Language", IsCorrect: false, Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&screening.VacancyQuestion{ID: 1, VacancyID: 1, QuestionID: 1, Audit: storage.Audit{CreatedDate: now}})
	mem.Seed(&screening.VacancyQuestion{ID: 2, VacancyID: 2, QuestionID: 2, Audit: storage.Audit{CreatedDate: now}})

	mem.Seed(&applicant.Applicant{
		ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@domain.com",
		PhoneNumber: "1112223333", UserID: 1, VacancyID: 1, TestScore: 85, CVPath: "jane.pdf",
		Audit: storage.Audit{CreatedDate: now},
	})
	mem.Seed(&applicant.Applicant{
		ID: 2, FirstName: "Mark", LastName: "Smith", Email: "mark@domain.com",
		PhoneNumber: "4445556666", UserID: 2, VacancyID: 2, TestScore: 90, CVPath: "mark.pdf",
		Audit: storage.Audit{CreatedDate: now},
	})
}
