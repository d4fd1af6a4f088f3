package validation

import (
	"strconv"
	"strings"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
)

const maxSkillLength = 100

// QuizQuery is a validated GET /api/quiz/questions query.
type QuizQuery struct {
	Role       domain.Role
	Difficulty domain.Difficulty
	Skill      string
	Limit      int // 0 means use the configured default
}

// Validator provides request validation functionality
type Validator struct {
	maxCount int
}

// NewValidator creates a new validator instance. maxCount bounds the quiz limit parameter.
func NewValidator(maxCount int) *Validator {
	if maxCount <= 0 {
		maxCount = 50
	}
	return &Validator{maxCount: maxCount}
}

// HasMissingQuizParams reports whether role or difficulty is absent.
func HasMissingQuizParams(role, difficulty string) bool {
	return strings.TrimSpace(role) == "" || strings.TrimSpace(difficulty) == ""
}

// ValidateQuizQuery parses role, difficulty, skill and limit. An absent skill
// becomes the role's default skill; a limit above the maximum is capped.
func (v *Validator) ValidateQuizQuery(role, difficulty, skill, limit string) (QuizQuery, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	var q QuizQuery

	if strings.TrimSpace(role) == "" {
		errors = append(errors, domain.NewMissingFieldError("role"))
	} else if r, ok := domain.ParseRole(role); ok {
		q.Role = r
	} else {
		errors = append(errors, domain.NewInvalidFormatError("role", role))
	}

	if strings.TrimSpace(difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	} else if d, ok := domain.ParseDifficulty(difficulty); ok {
		q.Difficulty = d
	} else {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
	}

	q.Skill = strings.TrimSpace(skill)
	if len(q.Skill) > maxSkillLength {
		errors = append(errors, domain.NewOutOfRangeError("skill", len(q.Skill), 1, maxSkillLength))
	}
	if q.Skill == "" && q.Role != "" {
		q.Skill = q.Role.DefaultSkill()
	}

	if limit = strings.TrimSpace(limit); limit != "" {
		n, err := strconv.Atoi(limit)
		switch {
		case err != nil:
			errors = append(errors, domain.NewInvalidFormatError("limit", limit))
		case n < 0:
			errors = append(errors, domain.NewOutOfRangeError("limit", n, 1, v.maxCount))
		case n > v.maxCount:
			q.Limit = v.maxCount
		default:
			q.Limit = n
		}
	}

	return q, errors
}

// ValidateSubmitRequest checks the shape of a quiz submission. An empty answer
// list is not reported here; the service rejects it with its own error code.
func (v *Validator) ValidateSubmitRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Role != "" {
		if _, ok := domain.ParseRole(req.Role); !ok {
			errors = append(errors, domain.NewInvalidFormatError("role", req.Role))
		}
	}
	if req.Difficulty != "" {
		if _, ok := domain.ParseDifficulty(req.Difficulty); !ok {
			errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
		}
	}
	for _, q := range req.Questions {
		if q.CorrectIndex == nil {
			errors = append(errors, domain.NewMissingFieldError("questions.correctIndex"))
			break
		}
		if *q.CorrectIndex < 0 || *q.CorrectIndex >= domain.OptionCount {
			errors = append(errors, domain.NewOutOfRangeError("questions.correctIndex", *q.CorrectIndex, 0, domain.OptionCount-1))
			break
		}
	}
	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.questionId"))
			break
		}
	}
	for _, a := range req.Answers {
		if a.SelectedIndex != nil && (*a.SelectedIndex < domain.Unanswered || *a.SelectedIndex >= domain.OptionCount) {
			errors = append(errors, domain.NewOutOfRangeError("answers.selectedIndex", *a.SelectedIndex, domain.Unanswered, domain.OptionCount-1))
			break
		}
	}

	return errors
}
