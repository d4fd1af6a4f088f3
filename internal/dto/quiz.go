package dto

import (
	"time"

	"career-accelerator/internal/domain"
)

// QuestionResponse is a generated question as sent to the client. The answer
// key travels with it because questions are not stored server-side.
// @Description Generated multiple-choice question
type QuestionResponse struct {
	ID           string   `json:"id"`
	LegacyID     string   `json:"_id"`
	Skill        string   `json:"skill"`
	Role         string   `json:"role"`
	Difficulty   string   `json:"difficulty"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// SubmittedQuestion echoes a question back on submit. Either id or _id identifies it.
type SubmittedQuestion struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	Skill        string `json:"skill"`
	CorrectIndex *int   `json:"correctIndex"`
}

type SubmittedAnswer struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex *int   `json:"selectedIndex"`
}

// SubmitQuizRequest is the body of POST /api/quiz/submit
// @Description Quiz answers together with the questions they answer
type SubmitQuizRequest struct {
	Skill      string              `json:"skill"`
	Role       string              `json:"role"`
	Difficulty string              `json:"difficulty"`
	Questions  []SubmittedQuestion `json:"questions"`
	Answers    []SubmittedAnswer   `json:"answers"`
}

// QuizAttemptResponse is a stored, scored quiz
// @Description Scored quiz attempt
type QuizAttemptResponse struct {
	ID             string    `json:"id"`
	Skill          string    `json:"skill"`
	Role           string    `json:"role"`
	Difficulty     string    `json:"difficulty"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Accuracy       int       `json:"accuracy"`
	Score          int       `json:"score"`
	Level          string    `json:"level"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GenerationFailureResponse is returned with 503 when no questions could be produced.
type GenerationFailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func ToQuestionResponse(q domain.QuizQuestion) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		LegacyID:     q.ID,
		Skill:        q.Skill,
		Role:         string(q.Role),
		Difficulty:   string(q.Difficulty),
		Question:     q.Question,
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
	}
}

func ToQuizAttemptResponse(a domain.QuizAttempt) QuizAttemptResponse {
	strengths, weaknesses := a.Strengths, a.Weaknesses
	if strengths == nil {
		strengths = []string{}
	}
	if weaknesses == nil {
		weaknesses = []string{}
	}
	return QuizAttemptResponse{
		ID:             a.ID,
		Skill:          a.Skill,
		Role:           string(a.Role),
		Difficulty:     string(a.Difficulty),
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Accuracy:       a.Accuracy,
		Score:          a.Score,
		Level:          string(a.Level),
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		CreatedAt:      a.CreatedAt,
	}
}

func ToQuizAttemptResponses(attempts []domain.QuizAttempt) []QuizAttemptResponse {
	out := make([]QuizAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, ToQuizAttemptResponse(a))
	}
	return out
}
