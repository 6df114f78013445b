package applicantsrv

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/fsx/fsxlocal"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	backend := storage.NewMemoryBackend()
	backend.Seed(&vacancy.Vacancy{
		ID: 1, Title: "Go Engineer", IsActive: true, CategoryID: 1, QuestionCount: 3,
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 1, 0),
	})
	files := fsxlocal.NewLocalFileSystem(t.TempDir())
	return New(storage.NewSessionFactory(backend), files)
}

func createReq(email string) applicant.CreateApplicantRequest {
	return applicant.CreateApplicantRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "5551234",
		VacancyID:   1,
	}
}

func TestCreateApplicant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp := svc.CreateApplicant(ctx, createReq("jane@example.com"))
	if !resp.Success || resp.Message != "Applicant successfully created." {
		t.Fatalf("create: %+v", resp)
	}

	got := svc.GetApplicantByID(ctx, 1)
	if !got.Success {
		t.Fatalf("get: %+v", got)
	}
	a := got.Payload.(applicant.ApplicantResponse)
	if a.FullName != "Jane Doe" {
		t.Errorf("FullName = %q", a.FullName)
	}
	if a.Email != "jane@example.com" {
		t.Errorf("Email = %q", a.Email)
	}
}

func TestCreateApplicantValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := createReq("jane@example.com")
	req.FirstName = ""
	if resp := svc.CreateApplicant(ctx, req); resp.Status != response.StatusBadRequest {
		t.Errorf("missing name: Status = %s", resp.Status)
	}

	if resp := svc.CreateApplicant(ctx, createReq("not-an-email")); resp.Status != response.StatusBadRequest {
		t.Errorf("bad email: Status = %s", resp.Status)
	}

	req = createReq("jane@example.com")
	req.VacancyID = 42
	if resp := svc.CreateApplicant(ctx, req); resp.Status != response.StatusNotFound {
		t.Errorf("missing vacancy: Status = %s", resp.Status)
	}
}

func TestCreateApplicantDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.CreateApplicant(ctx, createReq("jane@example.com"))
	resp := svc.CreateApplicant(ctx, createReq("jane@example.com"))
	if resp.Status != response.StatusConflict {
		t.Errorf("Status = %s, want CONFLICT", resp.Status)
	}
}

func TestDeleteApplicantIsSoft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.CreateApplicant(ctx, createReq("jane@example.com"))

	resp := svc.DeleteApplicant(ctx, 1)
	if !resp.Success || resp.Message != "Applicant successfully deleted." {
		t.Fatalf("delete: %+v", resp)
	}

	// The row stays retrievable by id, flagged as deleted.
	got := svc.GetApplicantByID(ctx, 1)
	if !got.Success {
		t.Fatalf("after delete: %+v", got)
	}
	if a := got.Payload.(applicant.ApplicantResponse); !a.IsDeleted {
		t.Errorf("IsDeleted = false, want true")
	}

	// Deleting again is a no-op that still succeeds.
	if again := svc.DeleteApplicant(ctx, 1); !again.Success {
		t.Errorf("repeat delete: %+v", again)
	}
}

func TestSearchApplicantsDeletedFlag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.CreateApplicant(ctx, createReq("jane@example.com"))
	svc.DeleteApplicant(ctx, 1)

	// A search that omits the flag still returns the deleted row.
	got := svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{FullName: "jane"})
	if !got.Success {
		t.Fatalf("default search: %+v", got)
	}
	if rows := got.Payload.([]applicant.ApplicantResponse); len(rows) != 1 || !rows[0].IsDeleted {
		t.Errorf("default search payload: %+v", rows)
	}

	// The flag filters either way when supplied.
	live := false
	if got := svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{IsDeleted: &live}); got.Status != response.StatusNotFound {
		t.Errorf("live-only search Status = %s, want NOT_FOUND", got.Status)
	}
	deleted := true
	got = svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{IsDeleted: &deleted})
	if !got.Success {
		t.Fatalf("deleted-only search: %+v", got)
	}
	if rows := got.Payload.([]applicant.ApplicantResponse); len(rows) != 1 {
		t.Errorf("deleted-only search payload: %+v", rows)
	}
}

func TestSearchApplicants(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.CreateApplicant(ctx, createReq("jane@example.com"))
	second := createReq("mark@example.com")
	second.FirstName = "Mark"
	second.LastName = "Smith"
	svc.CreateApplicant(ctx, second)

	resp := svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{FullName: "jane d"})
	if !resp.Success {
		t.Fatalf("name search: %+v", resp)
	}
	if rows := resp.Payload.([]applicant.ApplicantResponse); len(rows) != 1 || rows[0].FirstName != "Jane" {
		t.Errorf("name search payload: %+v", rows)
	}

	// Email matches exactly, not by substring.
	resp = svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{Email: "mark@example"})
	if resp.Status != response.StatusNotFound {
		t.Errorf("partial email Status = %s, want NOT_FOUND", resp.Status)
	}
	if resp.Message != "No applicants match the search criteria." {
		t.Errorf("Message = %q", resp.Message)
	}

	resp = svc.SearchApplicants(ctx, applicant.SearchApplicantsRequest{Email: "MARK@example.com"})
	if !resp.Success {
		t.Errorf("exact email search failed: %+v", resp)
	}
}

func TestCVUploadDownloadRoundtrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.CreateApplicant(ctx, createReq("jane@example.com"))

	content := []byte("%PDF-1.4 fake cv")
	resp := svc.UploadCV(ctx, 1, "resume.pdf", content)
	if !resp.Success || resp.Message != "Applicant CV uploaded successfully." {
		t.Fatalf("upload: %+v", resp)
	}

	got := svc.DownloadCV(ctx, 1)
	if !got.Success {
		t.Fatalf("download: %+v", got)
	}
	file := got.Payload.(applicant.CVFileResponse)
	if !bytes.Equal(file.FileContent, content) {
		t.Error("downloaded content differs from uploaded content")
	}
	// Stored names are generated, never the client's original name.
	if file.FileName == "resume.pdf" {
		t.Error("stored file kept the client-supplied name")
	}
	if ext := file.FileName[len(file.FileName)-4:]; ext != ".pdf" {
		t.Errorf("stored name %q lost its extension", file.FileName)
	}
}

func TestDownloadCVMissing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.CreateApplicant(ctx, createReq("jane@example.com"))

	resp := svc.DownloadCV(ctx, 1)
	if resp.Status != response.StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", resp.Status)
	}
	if resp.Message != "CV not found." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestUploadCVRejectsEmptyFile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.CreateApplicant(ctx, createReq("jane@example.com"))

	resp := svc.UploadCV(ctx, 1, "resume.pdf", nil)
	if resp.Status != response.StatusBadRequest {
		t.Errorf("Status = %s, want BAD_REQUEST", resp.Status)
	}
}

func TestGetApplicantTestResults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.CreateApplicant(ctx, createReq("jane@example.com"))
	resp := svc.GetApplicantTestResults(ctx, 1)
	if !resp.Success {
		t.Fatalf("results: %+v", resp)
	}
	row := resp.Payload.(applicant.TestResultResponse)
	if row.ApplicantID != 1 || row.TestScore != 0 {
		t.Errorf("unexpected result: %+v", row)
	}

	if got := svc.GetApplicantTestResults(ctx, 9); got.Status != response.StatusNotFound {
		t.Errorf("unknown applicant Status = %s, want NOT_FOUND", got.Status)
	}
}

func TestGetTestResultsForVacancy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.CreateApplicant(ctx, createReq("jane@example.com"))
	resp := svc.GetTestResultsForVacancy(ctx, 1)
	if !resp.Success {
		t.Fatalf("results: %+v", resp)
	}
	rows := resp.Payload.([]applicant.VacancyTestResultResponse)
	if len(rows) != 1 || rows[0].FullName != "Jane Doe" {
		t.Errorf("unexpected results: %+v", rows)
	}

	if got := svc.GetTestResultsForVacancy(ctx, 9); got.Status != response.StatusNotFound {
		t.Errorf("empty vacancy Status = %s, want NOT_FOUND", got.Status)
	}
}
