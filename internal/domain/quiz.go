package domain

import (
	"strings"
	"time"
)

// Role is the career track a quiz or skill belongs to.
type Role string

const (
	RoleFrontend      Role = "frontend"
	RoleBackend       Role = "backend"
	RoleData          Role = "data"
	RoleCybersecurity Role = "cybersecurity"
	RoleFullstack     Role = "fullstack"
	RoleOther         Role = "other"
)

var roles = []Role{RoleFrontend, RoleBackend, RoleData, RoleCybersecurity, RoleFullstack, RoleOther}

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// DefaultSkill is used when a quiz request names no skill.
func (r Role) DefaultSkill() string {
	switch r {
	case RoleFrontend:
		return "JavaScript"
	case RoleBackend:
		return "Node.js"
	case RoleData:
		return "Python"
	case RoleCybersecurity:
		return "Network Security"
	case RoleFullstack:
		return "MERN Stack"
	default:
		return "General"
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	}
	return "", false
}

// Level is the proficiency tier derived from quiz accuracy.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Unanswered is the selectedIndex sentinel for a skipped question.
const Unanswered = -1

// QuizQuestion is a validated multiple-choice question. ID is an ephemeral
// correlation key; questions are not persisted.
type QuizQuestion struct {
	ID           string     `json:"id"`
	Skill        string     `json:"skill"`
	Role         Role       `json:"role"`
	Difficulty   Difficulty `json:"difficulty"`
	Question     string     `json:"question"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
}

// QuizContext carries the request's own categorisation, which always wins over
// whatever the upstream text claims.
type QuizContext struct {
	Role       Role
	Difficulty Difficulty
	Skill      string
}

type AnswerSubmission struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
}

type QuizResult struct {
	TotalQuestions int      `json:"totalQuestions"`
	CorrectAnswers int      `json:"correctAnswers"`
	Accuracy       int      `json:"accuracy"`
	Level          Level    `json:"level"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`

	// Unmatched counts answers whose questionId matched no question.
	Unmatched int `json:"-"`
}

// QuizAttempt is a scored quiz stored against a user.
type QuizAttempt struct {
	ID             string
	UserID         string
	Skill          string
	Role           Role
	Difficulty     Difficulty
	TotalQuestions int
	CorrectAnswers int
	Accuracy       int
	Score          int
	Level          Level
	Strengths      []string
	Weaknesses     []string
	CreatedAt      time.Time
}

// NewQuizAttempt records result for userID. Score mirrors accuracy.
func NewQuizAttempt(userID string, qc QuizContext, result QuizResult) *QuizAttempt {
	return &QuizAttempt{
		UserID:         userID,
		Skill:          qc.Skill,
		Role:           qc.Role,
		Difficulty:     qc.Difficulty,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		Accuracy:       result.Accuracy,
		Score:          result.Accuracy,
		Level:          result.Level,
		Strengths:      result.Strengths,
		Weaknesses:     result.Weaknesses,
		CreatedAt:      time.Now(),
	}
}
