// Package screening holds the candidate test aggregate: a reusable question
// bank, the assignment of questions to vacancies and the answers applicants
// submit.
package screening

import (
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
)

// Question is a reusable screening question in the bank.
type Question struct {
	ID   kernel.QuestionID `db:"id" json:"id"`
	Text string            `db:"text" json:"text"`

	storage.Audit
}

func (q *Question) TableName() string { return "question_bank" }

func (q *Question) EntityID() kernel.QuestionID { return q.ID }

func (q *Question) SetEntityID(id kernel.QuestionID) { q.ID = id }

// AnswerOption is one selectable answer of a question. IsCorrect never leaves
// the service layer.
type AnswerOption struct {
	ID         kernel.AnswerOptionID `db:"id" json:"id"`
	QuestionID kernel.QuestionID     `db:"question_id" json:"question_id"`
	Text       string                `db:"text" json:"text"`
	IsCorrect  bool                  `db:"is_correct" json:"-"`

	storage.Audit
}

func (o *AnswerOption) TableName() string { return "answer_options" }

func (o *AnswerOption) EntityID() kernel.AnswerOptionID { return o.ID }

func (o *AnswerOption) SetEntityID(id kernel.AnswerOptionID) { o.ID = id }

// VacancyQuestion links a bank question to a vacancy's test.
type VacancyQuestion struct {
	ID         kernel.VacancyQuestionID `db:"id" json:"id"`
	VacancyID  kernel.VacancyID         `db:"vacancy_id" json:"vacancy_id"`
	QuestionID kernel.QuestionID        `db:"question_id" json:"question_id"`

	storage.Audit
}

func (vq *VacancyQuestion) TableName() string { return "vacancy_questions" }

func (vq *VacancyQuestion) EntityID() kernel.VacancyQuestionID { return vq.ID }

func (vq *VacancyQuestion) SetEntityID(id kernel.VacancyQuestionID) { vq.ID = id }

// TestAnswer records one submitted answer with its graded correctness.
type TestAnswer struct {
	ID             kernel.TestAnswerID   `db:"id" json:"id"`
	ApplicantID    kernel.ApplicantID    `db:"applicant_id" json:"applicant_id"`
	QuestionID     kernel.QuestionID     `db:"question_id" json:"question_id"`
	AnswerOptionID kernel.AnswerOptionID `db:"answer_option_id" json:"answer_option_id"`
	IsCorrect      bool                  `db:"is_correct" json:"is_correct"`

	storage.Audit
}

func (t *TestAnswer) TableName() string { return "test_answers" }

func (t *TestAnswer) EntityID() kernel.TestAnswerID { return t.ID }

func (t *TestAnswer) SetEntityID(id kernel.TestAnswerID) { t.ID = id }
