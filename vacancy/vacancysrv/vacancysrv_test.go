package vacancysrv

import (
	"context"
	"testing"
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

func newTestService() (*Service, *storage.MemoryBackend) {
	backend := storage.NewMemoryBackend()
	backend.Seed(&vacancy.Category{ID: 1, Name: "Engineering", Description: "Engineering roles"})
	backend.Seed(&vacancy.Category{ID: 2, Name: "Sales", Description: "Sales roles"})
	return New(storage.NewSessionFactory(backend)), backend
}

func createReq(title string) vacancy.CreateVacancyRequest {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return vacancy.CreateVacancyRequest{
		Title:         title,
		Description:   "desc",
		StartDate:     start,
		EndDate:       start.AddDate(0, 1, 0),
		IsActive:      true,
		CategoryID:    1,
		QuestionCount: 3,
	}
}

func TestCreateVacancy(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp := svc.CreateVacancy(ctx, createReq("Go Engineer"))
	if !resp.Success {
		t.Fatalf("create failed: %+v", resp)
	}
	if resp.Message != "Vacancy successfully created." {
		t.Errorf("Message = %q", resp.Message)
	}

	list := svc.GetVacancies(ctx)
	if !list.Success {
		t.Fatalf("list failed: %+v", list)
	}
	got := list.Payload.([]vacancy.VacancyResponse)
	if len(got) != 1 || got[0].Title != "Go Engineer" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if got[0].CategoryName != "Engineering" {
		t.Errorf("CategoryName = %q, want Engineering", got[0].CategoryName)
	}
}

func TestCreateVacancyValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp := svc.CreateVacancy(ctx, createReq("  "))
	if resp.Status != response.StatusBadRequest {
		t.Errorf("blank title: Status = %s, want BAD_REQUEST", resp.Status)
	}

	req := createReq("Backwards")
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	resp = svc.CreateVacancy(ctx, req)
	if resp.Status != response.StatusBadRequest {
		t.Errorf("inverted dates: Status = %s, want BAD_REQUEST", resp.Status)
	}

	req = createReq("Orphan")
	req.CategoryID = 99
	resp = svc.CreateVacancy(ctx, req)
	if resp.Status != response.StatusNotFound {
		t.Errorf("unknown category: Status = %s, want NOT_FOUND", resp.Status)
	}
}

func TestGetVacanciesEmpty(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.GetVacancies(context.Background())
	if resp.Status != response.StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", resp.Status)
	}
	if resp.Message != "No vacancies found." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestUpdateVacancyNotFound(t *testing.T) {
	svc, _ := newTestService()

	req := vacancy.UpdateVacancyRequest{ID: 42, Title: "x", CategoryID: 1}
	resp := svc.UpdateVacancy(context.Background(), req)
	if resp.Status != response.StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", resp.Status)
	}
	if resp.Message != "Vacancy not found." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestDeleteVacancyIsPermanent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.CreateVacancy(ctx, createReq("Temp"))
	resp := svc.DeleteVacancy(ctx, 1)
	if !resp.Success || resp.Message != "Vacancy successfully deleted." {
		t.Fatalf("delete: %+v", resp)
	}

	// Hard delete: the row is gone, not flagged.
	if got := svc.GetVacancyByID(ctx, 1); got.Status != response.StatusNotFound {
		t.Errorf("after delete Status = %s, want NOT_FOUND", got.Status)
	}
}

func TestSetVacancyStatusMessages(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	svc.CreateVacancy(ctx, createReq("Toggle"))

	resp := svc.SetVacancyStatus(ctx, vacancy.SetVacancyStatusRequest{ID: 1, IsActive: false})
	if resp.Message != "Vacancy inactive successfully." {
		t.Errorf("deactivate Message = %q", resp.Message)
	}

	resp = svc.SetVacancyStatus(ctx, vacancy.SetVacancyStatusRequest{ID: 1, IsActive: true})
	if resp.Message != "Vacancy active successfully." {
		t.Errorf("activate Message = %q", resp.Message)
	}
}

func TestFilterVacancies(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.CreateVacancy(ctx, createReq("Go Engineer"))
	svc.CreateVacancy(ctx, createReq("Java Engineer"))
	salesReq := createReq("Account Manager")
	salesReq.CategoryID = 2
	salesReq.IsActive = false
	svc.CreateVacancy(ctx, salesReq)

	// Title is a case-insensitive substring match.
	resp := svc.FilterVacancies(ctx, vacancy.FilterVacanciesRequest{Title: "eng"})
	if !resp.Success {
		t.Fatalf("filter: %+v", resp)
	}
	if got := resp.Payload.([]vacancy.VacancyResponse); len(got) != 2 {
		t.Errorf("title filter matched %d, want 2", len(got))
	}

	// Criteria intersect.
	active := true
	resp = svc.FilterVacancies(ctx, vacancy.FilterVacanciesRequest{Category: "engineering", IsActive: &active})
	if got := resp.Payload.([]vacancy.VacancyResponse); len(got) != 2 {
		t.Errorf("combined filter matched %d, want 2", len(got))
	}

	inactive := false
	resp = svc.FilterVacancies(ctx, vacancy.FilterVacanciesRequest{Title: "engineer", IsActive: &inactive})
	if resp.Status != response.StatusNotFound {
		t.Fatalf("disjoint filter: %+v", resp)
	}
	if resp.Message != "No vacancies match the filter criteria." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestGetCategories(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.GetCategories(context.Background())
	if !resp.Success {
		t.Fatalf("categories: %+v", resp)
	}
	got := resp.Payload.([]vacancy.CategoryResponse)
	if len(got) != 2 {
		t.Errorf("got %d categories, want 2", len(got))
	}
}
