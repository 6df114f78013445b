package applicantsrv

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

// Service implements applicant operations including CV file handling.
// Applicants are soft-deleted; their rows and CV files stay behind for
// screening history, and reads return them unless the caller filters
// them out through SearchApplicants.
type Service struct {
	sessions storage.SessionFactory
	files    fsx.FileSystem
}

func New(sessions storage.SessionFactory, files fsx.FileSystem) *Service {
	return &Service{sessions: sessions, files: files}
}

func (s *Service) CreateApplicant(ctx context.Context, req applicant.CreateApplicantRequest) *response.Response {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return response.FromError(applicant.ErrNameRequired())
	}
	email := kernel.NewEmail(req.Email)
	if !email.IsValid() {
		return response.FromError(applicant.ErrInvalidEmail())
	}

	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	if _, err := vacancies.GetByID(ctx, req.VacancyID); err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	existing, err := applicants.GetAll(ctx, func(a *applicant.Applicant) bool {
		return !a.IsDeleted && a.VacancyID == req.VacancyID && a.Email == email.String()
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(existing) > 0 {
		return response.FromError(applicant.ErrAlreadyExists())
	}

	applicants.Add(&applicant.Applicant{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       email.String(),
		PhoneNumber: req.PhoneNumber,
		UserID:      req.UserID,
		VacancyID:   req.VacancyID,
	})
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("create applicant: %v", err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Applicant successfully created.")
}

func (s *Service) UpdateApplicant(ctx context.Context, req applicant.UpdateApplicantRequest) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, req.ID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}

	if req.FirstName != "" {
		a.FirstName = req.FirstName
	}
	if req.LastName != "" {
		a.LastName = req.LastName
	}
	if req.Email != "" {
		email := kernel.NewEmail(req.Email)
		if !email.IsValid() {
			return response.FromError(applicant.ErrInvalidEmail())
		}
		a.Email = email.String()
	}
	if !req.PhoneNumber.IsEmpty() {
		a.PhoneNumber = req.PhoneNumber
	}

	applicants.Update(a)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("update applicant %d: %v", req.ID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Applicant successfully updated.")
}

// DeleteApplicant marks the applicant deleted. The row and any uploaded CV
// file are kept, and repeating the call succeeds without changing anything.
func (s *Service) DeleteApplicant(ctx context.Context, id kernel.ApplicantID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}

	a.IsDeleted = true
	applicants.Update(a)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("delete applicant %d: %v", id, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Applicant successfully deleted.")
}

func (s *Service) GetApplicantByID(ctx context.Context, id kernel.ApplicantID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}
	return response.Success(toResponse(a))
}

// GetApplicantsForVacancy lists all applicants of one vacancy, soft-deleted
// ones included.
func (s *Service) GetApplicantsForVacancy(ctx context.Context, vacancyID kernel.VacancyID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	all, err := applicants.GetAll(ctx, func(a *applicant.Applicant) bool {
		return a.VacancyID == vacancyID
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(all) == 0 {
		return response.NotFound("No applicants found.")
	}
	return response.Success(toResponses(all))
}

// GetApplicantTestResults returns the screening score recorded for one
// applicant.
func (s *Service) GetApplicantTestResults(ctx context.Context, id kernel.ApplicantID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}

	return response.Success(applicant.TestResultResponse{
		ApplicantID: a.ID,
		TestScore:   a.TestScore,
	})
}

// GetTestResultsForVacancy lists applicant scores across a whole vacancy.
func (s *Service) GetTestResultsForVacancy(ctx context.Context, vacancyID kernel.VacancyID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	all, err := applicants.GetAll(ctx, func(a *applicant.Applicant) bool {
		return a.VacancyID == vacancyID
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(all) == 0 {
		return response.NotFound("No applicants found.")
	}

	results := make([]applicant.VacancyTestResultResponse, 0, len(all))
	for _, a := range all {
		results = append(results, applicant.VacancyTestResultResponse{
			ApplicantID: a.ID,
			FullName:    a.FullName(),
			TestScore:   a.TestScore,
		})
	}
	return response.Success(results)
}

// SearchApplicants returns applicants matching every supplied criterion.
// FullName matches as a case-insensitive substring, Email exactly.
func (s *Service) SearchApplicants(ctx context.Context, req applicant.SearchApplicantsRequest) *response.Response {
	fullName := strings.ToLower(strings.TrimSpace(req.FullName))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	matched, err := applicants.GetAll(ctx, func(a *applicant.Applicant) bool {
		if req.IsDeleted != nil && a.IsDeleted != *req.IsDeleted {
			return false
		}
		if fullName != "" && !strings.Contains(strings.ToLower(a.FullName()), fullName) {
			return false
		}
		if email != "" && strings.ToLower(a.Email) != email {
			return false
		}
		if req.MinScore != nil && a.TestScore < *req.MinScore {
			return false
		}
		if req.MaxScore != nil && a.TestScore > *req.MaxScore {
			return false
		}
		return true
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(matched) == 0 {
		return response.NotFound("No applicants match the search criteria.")
	}
	return response.Success(toResponses(matched))
}

// UploadCV stores the file under a generated name and records that name on
// the applicant. A previous CV file is left on disk; the record points at the
// newest one.
func (s *Service) UploadCV(ctx context.Context, id kernel.ApplicantID, fileName string, content []byte) *response.Response {
	if len(content) == 0 {
		return response.FromError(applicant.ErrEmptyCV())
	}

	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}

	stored := uuid.NewString() + filepath.Ext(fileName)
	if err := s.files.WriteFile(ctx, stored, content); err != nil {
		logx.Errorf("write cv for applicant %d: %v", id, err)
		return response.FromError(err)
	}

	a.CVPath = stored
	applicants.Update(a)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("upload cv for applicant %d: %v", id, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Applicant CV uploaded successfully.")
}

// DownloadCV returns the stored CV bytes. A missing record path and a missing
// file on disk both report the same not-found outcome.
func (s *Service) DownloadCV(ctx context.Context, id kernel.ApplicantID) *response.Response {
	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}
	if a.CVPath == "" {
		return response.NotFound("CV not found.")
	}

	content, err := s.files.ReadFile(ctx, a.CVPath)
	if err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return response.NotFound("CV not found.")
		}
		logx.Errorf("read cv for applicant %d: %v", id, err)
		return response.FromError(err)
	}

	return response.Success(applicant.CVFileResponse{
		FileName:    a.CVPath,
		FileContent: content,
	})
}

func toResponse(a *applicant.Applicant) applicant.ApplicantResponse {
	return applicant.ApplicantResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		FullName:    a.FullName(),
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		UserID:      a.UserID,
		VacancyID:   a.VacancyID,
		TestScore:   a.TestScore,
		HasCV:       a.CVPath != "",
		IsDeleted:   a.IsDeleted,
		CreatedDate: a.CreatedDate,
	}
}

func toResponses(as []*applicant.Applicant) []applicant.ApplicantResponse {
	out := make([]applicant.ApplicantResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toResponse(a))
	}
	return out
}
