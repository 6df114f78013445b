package screeningsrv

import (
	"context"
	"testing"
	"time"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/screening"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

func newTestService() (*Service, *storage.MemoryBackend) {
	backend := storage.NewMemoryBackend()
	backend.Seed(&vacancy.Vacancy{
		ID: 1, Title: "Go Engineer", IsActive: true, QuestionCount: 2,
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 1, 0),
	})
	backend.Seed(&applicant.Applicant{
		ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", VacancyID: 1,
	})
	return New(storage.NewSessionFactory(backend)), backend
}

func questionReq(text string, correctFirst bool) screening.AddQuestionRequest {
	return screening.AddQuestionRequest{
		Text: text,
		Options: []screening.AddOptionRequest{
			{Text: "alpha", IsCorrect: correctFirst},
			{Text: "beta", IsCorrect: !correctFirst},
		},
	}
}

func TestAddQuestion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp := svc.AddQuestion(ctx, questionReq("What is Go?", true))
	if !resp.Success || resp.Message != "Question successfully added." {
		t.Fatalf("add: %+v", resp)
	}

	list := svc.GetQuestions(ctx)
	if !list.Success {
		t.Fatalf("list: %+v", list)
	}
	qs := list.Payload.([]screening.QuestionResponse)
	if len(qs) != 1 || len(qs[0].Options) != 2 {
		t.Errorf("unexpected bank: %+v", qs)
	}
}

func TestAddQuestionValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if resp := svc.AddQuestion(ctx, questionReq("  ", true)); resp.Status != response.StatusBadRequest {
		t.Errorf("blank text: Status = %s", resp.Status)
	}

	req := screening.AddQuestionRequest{
		Text:    "Lonely?",
		Options: []screening.AddOptionRequest{{Text: "only", IsCorrect: true}},
	}
	if resp := svc.AddQuestion(ctx, req); resp.Status != response.StatusBadRequest {
		t.Errorf("single option: Status = %s", resp.Status)
	}

	req = screening.AddQuestionRequest{
		Text: "No right answer?",
		Options: []screening.AddOptionRequest{
			{Text: "a"}, {Text: "b"},
		},
	}
	if resp := svc.AddQuestion(ctx, req); resp.Status != response.StatusBadRequest {
		t.Errorf("no correct option: Status = %s", resp.Status)
	}
}

func TestAssignQuestionBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AddQuestion(ctx, questionReq("Q1", true))
	svc.AddQuestion(ctx, questionReq("Q2", true))
	svc.AddQuestion(ctx, questionReq("Q3", true))

	if resp := svc.AssignQuestion(ctx, screening.AssignQuestionRequest{VacancyID: 1, QuestionID: 1}); !resp.Success {
		t.Fatalf("assign q1: %+v", resp)
	}

	// Re-assigning the same question conflicts.
	if resp := svc.AssignQuestion(ctx, screening.AssignQuestionRequest{VacancyID: 1, QuestionID: 1}); resp.Status != response.StatusConflict {
		t.Errorf("duplicate assign Status = %s, want CONFLICT", resp.Status)
	}

	if resp := svc.AssignQuestion(ctx, screening.AssignQuestionRequest{VacancyID: 1, QuestionID: 2}); !resp.Success {
		t.Fatalf("assign q2: %+v", resp)
	}

	// The vacancy is configured for two questions.
	if resp := svc.AssignQuestion(ctx, screening.AssignQuestionRequest{VacancyID: 1, QuestionID: 3}); resp.Status != response.StatusBadRequest {
		t.Errorf("over-capacity assign Status = %s, want BAD_REQUEST", resp.Status)
	}
}

func TestGetVacancyTestHidesCorrectness(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AddQuestion(ctx, questionReq("Q1", true))
	svc.AssignQuestion(ctx, screening.AssignQuestionRequest{VacancyID: 1, QuestionID: 1})

	resp := svc.GetVacancyTest(ctx, 1)
	if !resp.Success {
		t.Fatalf("test: %+v", resp)
	}
	test := resp.Payload.([]screening.TestQuestionResponse)
	if len(test) != 1 || len(test[0].Options) != 2 {
		t.Fatalf("unexpected test: %+v", test)
	}
	// TestOptionResponse has no correctness field; verify both options came
	// through without it leaking via ordering guarantees.
	for _, o := range test[0].Options {
		if o.Text == "" || o.OptionID == 0 {
			t.Errorf("incomplete option: %+v", o)
		}
	}
}

func TestGetVacancyTestEmpty(t *testing.T) {
	svc, _ := newTestService()

	resp := svc.GetVacancyTest(context.Background(), 1)
	if resp.Status != response.StatusNotFound {
		t.Errorf("Status = %s, want NOT_FOUND", resp.Status)
	}
}

func TestSubmitTestScoring(t *testing.T) {
	svc, backend := newTestService()
	ctx := context.Background()

	svc.AddQuestion(ctx, questionReq("Q1", true))  // option 1 correct
	svc.AddQuestion(ctx, questionReq("Q2", false)) // option 4 correct

	resp := svc.SubmitTest(ctx, screening.SubmitTestRequest{
		ApplicantID: 1,
		Answers: []screening.SubmittedAnswer{
			{QuestionID: 1, AnswerOptionID: 1}, // correct
			{QuestionID: 2, AnswerOptionID: 3}, // wrong
		},
	})
	if !resp.Success {
		t.Fatalf("submit: %+v", resp)
	}
	result := resp.Payload.(screening.SubmitTestResponse)
	if result.CorrectCount != 1 || result.Score != 50 {
		t.Errorf("result = %+v, want 1 correct, score 50", result)
	}

	// The score lands on the applicant row.
	uow := storage.NewUnitOfWork(backend)
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("reload applicant: %v", err)
	}
	if a.TestScore != 50 {
		t.Errorf("TestScore = %v, want 50", a.TestScore)
	}
}

func TestSubmitTestRejectsSecondAttempt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AddQuestion(ctx, questionReq("Q1", true))
	submit := screening.SubmitTestRequest{
		ApplicantID: 1,
		Answers:     []screening.SubmittedAnswer{{QuestionID: 1, AnswerOptionID: 1}},
	}
	if resp := svc.SubmitTest(ctx, submit); !resp.Success {
		t.Fatalf("first submit: %+v", resp)
	}
	if resp := svc.SubmitTest(ctx, submit); resp.Status != response.StatusConflict {
		t.Errorf("second submit Status = %s, want CONFLICT", resp.Status)
	}
}

func TestSubmitTestRejectsMismatchedAnswer(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AddQuestion(ctx, questionReq("Q1", true))
	svc.AddQuestion(ctx, questionReq("Q2", true))

	// Option 3 belongs to question 2, not question 1.
	resp := svc.SubmitTest(ctx, screening.SubmitTestRequest{
		ApplicantID: 1,
		Answers:     []screening.SubmittedAnswer{{QuestionID: 1, AnswerOptionID: 3}},
	})
	if resp.Status != response.StatusBadRequest {
		t.Errorf("Status = %s, want BAD_REQUEST", resp.Status)
	}
}
