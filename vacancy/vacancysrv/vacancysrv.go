package vacancysrv

import (
	"context"
	"strings"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

// Service implements vacancy lifecycle operations. Every public method returns
// an envelope; errors from the session layer are classified, never surfaced
// raw.
type Service struct {
	sessions storage.SessionFactory
}

func New(sessions storage.SessionFactory) *Service {
	return &Service{sessions: sessions}
}

func (s *Service) CreateVacancy(ctx context.Context, req vacancy.CreateVacancyRequest) *response.Response {
	if strings.TrimSpace(req.Title) == "" {
		return response.FromError(vacancy.ErrTitleRequired())
	}
	if !req.EndDate.IsZero() && !req.EndDate.After(req.StartDate) {
		return response.FromError(vacancy.ErrInvalidDates())
	}

	uow := s.sessions()
	if !req.CategoryID.IsZero() {
		categories := storage.RepositoryFor[*vacancy.Category, kernel.CategoryID](uow)
		if _, err := categories.GetByID(ctx, req.CategoryID); err != nil {
			if storage.IsNotFound(err) {
				return response.FromError(vacancy.ErrCategoryNotFound())
			}
			return response.FromError(err)
		}
	}

	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	vacancies.Add(&vacancy.Vacancy{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		IsActive:      req.IsActive,
		CategoryID:    req.CategoryID,
		QuestionCount: req.QuestionCount,
	})
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("create vacancy: %v", err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Vacancy successfully created.")
}

func (s *Service) UpdateVacancy(ctx context.Context, req vacancy.UpdateVacancyRequest) *response.Response {
	if strings.TrimSpace(req.Title) == "" {
		return response.FromError(vacancy.ErrTitleRequired())
	}
	if !req.EndDate.IsZero() && !req.EndDate.After(req.StartDate) {
		return response.FromError(vacancy.ErrInvalidDates())
	}

	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	v, err := vacancies.GetByID(ctx, req.ID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	if !req.CategoryID.IsZero() && req.CategoryID != v.CategoryID {
		categories := storage.RepositoryFor[*vacancy.Category, kernel.CategoryID](uow)
		if _, err := categories.GetByID(ctx, req.CategoryID); err != nil {
			if storage.IsNotFound(err) {
				return response.FromError(vacancy.ErrCategoryNotFound())
			}
			return response.FromError(err)
		}
	}

	v.Title = req.Title
	v.Description = req.Description
	v.StartDate = req.StartDate
	v.EndDate = req.EndDate
	v.IsActive = req.IsActive
	v.CategoryID = req.CategoryID
	v.QuestionCount = req.QuestionCount

	vacancies.Update(v)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("update vacancy %d: %v", req.ID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Vacancy successfully updated.")
}

// DeleteVacancy removes the vacancy row permanently. Vacancies are reference
// data for applicants, so closing one is a hard delete rather than a soft
// flag.
func (s *Service) DeleteVacancy(ctx context.Context, id kernel.VacancyID) *response.Response {
	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	v, err := vacancies.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	vacancies.Delete(v)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("delete vacancy %d: %v", id, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Vacancy successfully deleted.")
}

func (s *Service) GetVacancies(ctx context.Context) *response.Response {
	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	all, err := vacancies.GetAll(ctx, nil)
	if err != nil {
		return response.FromError(err)
	}
	if len(all) == 0 {
		return response.NotFound("No vacancies found.")
	}

	names, err := s.categoryNames(ctx, uow)
	if err != nil {
		return response.FromError(err)
	}
	return response.Success(toResponses(all, names))
}

func (s *Service) GetVacancyByID(ctx context.Context, id kernel.VacancyID) *response.Response {
	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	v, err := vacancies.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	names, err := s.categoryNames(ctx, uow)
	if err != nil {
		return response.FromError(err)
	}
	return response.Success(toResponse(v, names))
}

// SetVacancyStatus toggles the active flag and reports the resulting state in
// the message.
func (s *Service) SetVacancyStatus(ctx context.Context, req vacancy.SetVacancyStatusRequest) *response.Response {
	uow := s.sessions()
	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	v, err := vacancies.GetByID(ctx, req.ID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	v.IsActive = req.IsActive
	vacancies.Update(v)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("set vacancy %d status: %v", req.ID, err)
		return response.FromError(err)
	}

	state := "inactive"
	if req.IsActive {
		state = "active"
	}
	return response.SuccessMessage("Vacancy " + state + " successfully.")
}

// FilterVacancies returns vacancies matching every supplied criterion.
// Unset fields do not constrain the result.
func (s *Service) FilterVacancies(ctx context.Context, req vacancy.FilterVacanciesRequest) *response.Response {
	uow := s.sessions()

	names, err := s.categoryNames(ctx, uow)
	if err != nil {
		return response.FromError(err)
	}

	title := strings.ToLower(strings.TrimSpace(req.Title))
	category := strings.ToLower(strings.TrimSpace(req.Category))

	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	matched, err := vacancies.GetAll(ctx, func(v *vacancy.Vacancy) bool {
		if title != "" && !strings.Contains(strings.ToLower(v.Title), title) {
			return false
		}
		if category != "" && strings.ToLower(names[v.CategoryID]) != category {
			return false
		}
		if req.IsActive != nil && v.IsActive != *req.IsActive {
			return false
		}
		if req.CreatedAfter != nil && v.CreatedDate.Before(*req.CreatedAfter) {
			return false
		}
		if req.CreatedBefore != nil && v.CreatedDate.After(*req.CreatedBefore) {
			return false
		}
		return true
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(matched) == 0 {
		return response.NotFound("No vacancies match the filter criteria.")
	}
	return response.Success(toResponses(matched, names))
}

func (s *Service) GetCategories(ctx context.Context) *response.Response {
	uow := s.sessions()
	categories := storage.RepositoryFor[*vacancy.Category, kernel.CategoryID](uow)
	all, err := categories.GetAll(ctx, nil)
	if err != nil {
		return response.FromError(err)
	}

	out := make([]vacancy.CategoryResponse, 0, len(all))
	for _, c := range all {
		out = append(out, vacancy.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return response.Success(out)
}

func (s *Service) categoryNames(ctx context.Context, uow *storage.UnitOfWork) (map[kernel.CategoryID]string, error) {
	categories := storage.RepositoryFor[*vacancy.Category, kernel.CategoryID](uow)
	all, err := categories.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	names := make(map[kernel.CategoryID]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Name
	}
	return names, nil
}

func toResponse(v *vacancy.Vacancy, names map[kernel.CategoryID]string) vacancy.VacancyResponse {
	return vacancy.VacancyResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		IsActive:      v.IsActive,
		CategoryID:    v.CategoryID,
		CategoryName:  names[v.CategoryID],
		QuestionCount: v.QuestionCount,
		CreatedDate:   v.CreatedDate,
		ModifiedDate:  v.ModifiedDate,
	}
}

func toResponses(vs []*vacancy.Vacancy, names map[kernel.CategoryID]string) []vacancy.VacancyResponse {
	out := make([]vacancy.VacancyResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toResponse(v, names))
	}
	return out
}
