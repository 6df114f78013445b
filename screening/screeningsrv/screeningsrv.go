package screeningsrv

import (
	"context"
	"math"
	"strings"

	"github.com/CavidAtamoghlanov/vacancy-management/applicant"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/logx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/response"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
	"github.com/CavidAtamoghlanov/vacancy-management/screening"
	"github.com/CavidAtamoghlanov/vacancy-management/vacancy"
)

// Service implements the screening test operations: building the question
// bank, assembling per-vacancy tests and grading submissions.
type Service struct {
	sessions storage.SessionFactory
}

func New(sessions storage.SessionFactory) *Service {
	return &Service{sessions: sessions}
}

// AddQuestion creates a bank question with its options. The question is
// committed first so the options can reference its generated id.
func (s *Service) AddQuestion(ctx context.Context, req screening.AddQuestionRequest) *response.Response {
	if strings.TrimSpace(req.Text) == "" {
		return response.FromError(screening.ErrTextRequired())
	}
	if len(req.Options) < 2 {
		return response.FromError(screening.ErrTooFewOptions())
	}
	hasCorrect := false
	for _, o := range req.Options {
		if o.IsCorrect {
			hasCorrect = true
			break
		}
	}
	if !hasCorrect {
		return response.FromError(screening.ErrNoCorrectOption())
	}

	uow := s.sessions()
	questions := storage.RepositoryFor[*screening.Question, kernel.QuestionID](uow)
	q := &screening.Question{Text: req.Text}
	questions.Add(q)
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("add question: %v", err)
		return response.FromError(err)
	}

	options := storage.RepositoryFor[*screening.AnswerOption, kernel.AnswerOptionID](uow)
	for _, o := range req.Options {
		options.Add(&screening.AnswerOption{
			QuestionID: q.ID,
			Text:       o.Text,
			IsCorrect:  o.IsCorrect,
		})
	}
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("add options for question %d: %v", q.ID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Question successfully added.")
}

// GetQuestions lists the full bank including correctness flags.
func (s *Service) GetQuestions(ctx context.Context) *response.Response {
	uow := s.sessions()
	questions := storage.RepositoryFor[*screening.Question, kernel.QuestionID](uow)
	all, err := questions.GetAll(ctx, nil)
	if err != nil {
		return response.FromError(err)
	}
	if len(all) == 0 {
		return response.NotFound("No questions found.")
	}

	options := storage.RepositoryFor[*screening.AnswerOption, kernel.AnswerOptionID](uow)
	allOptions, err := options.GetAll(ctx, nil)
	if err != nil {
		return response.FromError(err)
	}
	byQuestion := make(map[kernel.QuestionID][]screening.OptionResponse)
	for _, o := range allOptions {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], screening.OptionResponse{
			ID:        o.ID,
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
		})
	}

	out := make([]screening.QuestionResponse, 0, len(all))
	for _, q := range all {
		out = append(out, screening.QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: byQuestion[q.ID],
		})
	}
	return response.Success(out)
}

// AssignQuestion links a bank question to a vacancy's test, bounded by the
// vacancy's configured question count.
func (s *Service) AssignQuestion(ctx context.Context, req screening.AssignQuestionRequest) *response.Response {
	uow := s.sessions()

	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	v, err := vacancies.GetByID(ctx, req.VacancyID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	questions := storage.RepositoryFor[*screening.Question, kernel.QuestionID](uow)
	if _, err := questions.GetByID(ctx, req.QuestionID); err != nil {
		if storage.IsNotFound(err) {
			return response.FromError(screening.ErrQuestionNotFound())
		}
		return response.FromError(err)
	}

	assignments := storage.RepositoryFor[*screening.VacancyQuestion, kernel.VacancyQuestionID](uow)
	assigned, err := assignments.GetAll(ctx, func(vq *screening.VacancyQuestion) bool {
		return vq.VacancyID == req.VacancyID
	})
	if err != nil {
		return response.FromError(err)
	}
	for _, vq := range assigned {
		if vq.QuestionID == req.QuestionID {
			return response.FromError(screening.ErrAlreadyAssigned())
		}
	}
	if v.QuestionCount > 0 && len(assigned) >= v.QuestionCount {
		return response.FromError(screening.ErrTestFull())
	}

	assignments.Add(&screening.VacancyQuestion{
		VacancyID:  req.VacancyID,
		QuestionID: req.QuestionID,
	})
	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("assign question %d to vacancy %d: %v", req.QuestionID, req.VacancyID, err)
		return response.FromError(err)
	}
	return response.SuccessMessage("Question successfully assigned to vacancy.")
}

// GetVacancyTest assembles the test an applicant sees. Option correctness is
// never included.
func (s *Service) GetVacancyTest(ctx context.Context, vacancyID kernel.VacancyID) *response.Response {
	uow := s.sessions()

	vacancies := storage.RepositoryFor[*vacancy.Vacancy, kernel.VacancyID](uow)
	if _, err := vacancies.GetByID(ctx, vacancyID); err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Vacancy not found.")
		}
		return response.FromError(err)
	}

	assignments := storage.RepositoryFor[*screening.VacancyQuestion, kernel.VacancyQuestionID](uow)
	assigned, err := assignments.GetAll(ctx, func(vq *screening.VacancyQuestion) bool {
		return vq.VacancyID == vacancyID
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(assigned) == 0 {
		return response.FromError(screening.ErrNoTest())
	}

	wanted := make(map[kernel.QuestionID]bool, len(assigned))
	for _, vq := range assigned {
		wanted[vq.QuestionID] = true
	}

	questions := storage.RepositoryFor[*screening.Question, kernel.QuestionID](uow)
	qs, err := questions.GetAll(ctx, func(q *screening.Question) bool {
		return wanted[q.ID]
	})
	if err != nil {
		return response.FromError(err)
	}

	options := storage.RepositoryFor[*screening.AnswerOption, kernel.AnswerOptionID](uow)
	opts, err := options.GetAll(ctx, func(o *screening.AnswerOption) bool {
		return wanted[o.QuestionID]
	})
	if err != nil {
		return response.FromError(err)
	}
	byQuestion := make(map[kernel.QuestionID][]screening.TestOptionResponse)
	for _, o := range opts {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], screening.TestOptionResponse{
			OptionID: o.ID,
			Text:     o.Text,
		})
	}

	test := make([]screening.TestQuestionResponse, 0, len(qs))
	for _, q := range qs {
		test = append(test, screening.TestQuestionResponse{
			QuestionID: q.ID,
			Text:       q.Text,
			Options:    byQuestion[q.ID],
		})
	}
	return response.Success(test)
}

// SubmitTest grades a submission, records every answer and writes the
// percentage score onto the applicant in one commit.
func (s *Service) SubmitTest(ctx context.Context, req screening.SubmitTestRequest) *response.Response {
	if len(req.Answers) == 0 {
		return response.BadRequest("Test submission contains no answers.")
	}

	uow := s.sessions()
	applicants := storage.RepositoryFor[*applicant.Applicant, kernel.ApplicantID](uow)
	a, err := applicants.GetByID(ctx, req.ApplicantID)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound("Applicant not found.")
		}
		return response.FromError(err)
	}
	if a.IsDeleted {
		return response.NotFound("Applicant not found.")
	}

	answers := storage.RepositoryFor[*screening.TestAnswer, kernel.TestAnswerID](uow)
	previous, err := answers.GetAll(ctx, func(t *screening.TestAnswer) bool {
		return t.ApplicantID == req.ApplicantID
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(previous) > 0 {
		return response.FromError(screening.ErrAlreadySubmitted())
	}

	options := storage.RepositoryFor[*screening.AnswerOption, kernel.AnswerOptionID](uow)
	allOptions, err := options.GetAll(ctx, nil)
	if err != nil {
		return response.FromError(err)
	}
	optionIndex := make(map[kernel.AnswerOptionID]*screening.AnswerOption, len(allOptions))
	for _, o := range allOptions {
		optionIndex[o.ID] = o
	}

	correct := 0
	for _, ans := range req.Answers {
		opt, ok := optionIndex[ans.AnswerOptionID]
		if !ok || opt.QuestionID != ans.QuestionID {
			return response.FromError(screening.ErrInvalidAnswer())
		}
		if opt.IsCorrect {
			correct++
		}
		answers.Add(&screening.TestAnswer{
			ApplicantID:    req.ApplicantID,
			QuestionID:     ans.QuestionID,
			AnswerOptionID: ans.AnswerOptionID,
			IsCorrect:      opt.IsCorrect,
		})
	}

	score := math.Round(float64(correct)/float64(len(req.Answers))*10000) / 100
	a.TestScore = score
	applicants.Update(a)

	if _, err := uow.Commit(ctx); err != nil {
		logx.Errorf("submit test for applicant %d: %v", req.ApplicantID, err)
		return response.FromError(err)
	}

	return response.Success(screening.SubmitTestResponse{
		ApplicantID:  req.ApplicantID,
		TotalAnswers: len(req.Answers),
		CorrectCount: correct,
		Score:        score,
	})
}
