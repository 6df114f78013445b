package screening

import "github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"

// AddQuestionRequest - DTO for adding a question with its answer options
type AddQuestionRequest struct {
	Text    string             `json:"text" validate:"required"`
	Options []AddOptionRequest `json:"options" validate:"required,min=2"`
}

// AddOptionRequest - one answer option of a new question
type AddOptionRequest struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// AssignQuestionRequest - DTO for assigning a bank question to a vacancy test
type AssignQuestionRequest struct {
	VacancyID  kernel.VacancyID  `json:"vacancy_id" validate:"required"`
	QuestionID kernel.QuestionID `json:"question_id" validate:"required"`
}

// SubmitTestRequest - DTO carrying an applicant's selected options
type SubmitTestRequest struct {
	ApplicantID kernel.ApplicantID `json:"applicant_id" validate:"required"`
	Answers     []SubmittedAnswer  `json:"answers" validate:"required,min=1"`
}

// SubmittedAnswer - one selected option for one question
type SubmittedAnswer struct {
	QuestionID     kernel.QuestionID     `json:"question_id"`
	AnswerOptionID kernel.AnswerOptionID `json:"answer_option_id"`
}

// TestQuestionResponse - DTO for a question as shown to an applicant.
// Correctness is stripped from the options.
type TestQuestionResponse struct {
	QuestionID kernel.QuestionID    `json:"question_id"`
	Text       string               `json:"text"`
	Options    []TestOptionResponse `json:"options"`
}

// TestOptionResponse - a selectable option without its correctness flag
type TestOptionResponse struct {
	OptionID kernel.AnswerOptionID `json:"option_id"`
	Text     string                `json:"text"`
}

// SubmitTestResponse - the graded outcome of a submission
type SubmitTestResponse struct {
	ApplicantID  kernel.ApplicantID `json:"applicant_id"`
	TotalAnswers int                `json:"total_answers"`
	CorrectCount int                `json:"correct_count"`
	Score        float64            `json:"score"`
}

// QuestionResponse - DTO for listing bank questions with full options
type QuestionResponse struct {
	ID      kernel.QuestionID `json:"id"`
	Text    string            `json:"text"`
	Options []OptionResponse  `json:"options"`
}

// OptionResponse - a bank option including correctness, for admin listings
type OptionResponse struct {
	ID        kernel.AnswerOptionID `json:"id"`
	Text      string                `json:"text"`
	IsCorrect bool                  `json:"is_correct"`
}
