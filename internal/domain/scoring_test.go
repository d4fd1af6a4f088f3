package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(id, skill string, correct int) QuizQuestion {
	return QuizQuestion{
		ID:           id,
		Skill:        skill,
		Role:         RoleFrontend,
		Difficulty:   DifficultyEasy,
		Question:     "Q " + id,
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
	}
}

func TestScoreSubmission_SevenCorrectThreeUnanswered(t *testing.T) {
	skills := []string{"React", "React", "CSS", "HTML", "React", "CSS", "HTML", "Redux", "Hooks", "React"}
	var questions []QuizQuestion
	var answers []AnswerSubmission
	for i, skill := range skills {
		id := fmt.Sprintf("q%d", i)
		questions = append(questions, question(id, skill, 2))
		selected := 2
		if i >= 7 {
			selected = Unanswered
		}
		answers = append(answers, AnswerSubmission{QuestionID: id, SelectedIndex: selected})
	}

	result := ScoreSubmission(questions, answers)

	assert.Equal(t, 10, result.TotalQuestions)
	assert.Equal(t, 7, result.CorrectAnswers)
	assert.Equal(t, 70, result.Accuracy)
	assert.Equal(t, LevelIntermediate, result.Level)
	assert.Equal(t, []string{"React", "CSS", "HTML"}, result.Strengths)
	assert.Equal(t, []string{"Redux", "Hooks", "React"}, result.Weaknesses)
	assert.Zero(t, result.Unmatched)
}

func TestScoreSubmission_UnknownQuestionSkippedButCounted(t *testing.T) {
	questions := []QuizQuestion{question("a", "Go", 0), question("b", "SQL", 1)}
	answers := []AnswerSubmission{
		{QuestionID: "a", SelectedIndex: 0},
		{QuestionID: "ghost", SelectedIndex: 1},
	}

	result := ScoreSubmission(questions, answers)

	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 50, result.Accuracy)
	assert.Equal(t, []string{"Go"}, result.Strengths)
	assert.Empty(t, result.Weaknesses)
	assert.Equal(t, 1, result.Unmatched)
}

func TestScoreSubmission_SameSkillInBothSets(t *testing.T) {
	questions := []QuizQuestion{question("a", "Go", 0), question("b", "Go", 1)}
	answers := []AnswerSubmission{
		{QuestionID: "a", SelectedIndex: 0},
		{QuestionID: "b", SelectedIndex: 3},
	}

	result := ScoreSubmission(questions, answers)
	assert.Equal(t, []string{"Go"}, result.Strengths)
	assert.Equal(t, []string{"Go"}, result.Weaknesses)
}

func TestScoreSubmission_EmptyAnswers(t *testing.T) {
	result := ScoreSubmission([]QuizQuestion{question("a", "Go", 0)}, nil)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.Accuracy)
	assert.Equal(t, LevelBeginner, result.Level)
	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.Weaknesses)
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 200, 1},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Accuracy(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelAdvanced, LevelFor(100))
	assert.Equal(t, LevelAdvanced, LevelFor(75))
	assert.Equal(t, LevelIntermediate, LevelFor(74))
	assert.Equal(t, LevelIntermediate, LevelFor(45))
	assert.Equal(t, LevelBeginner, LevelFor(44))
	assert.Equal(t, LevelBeginner, LevelFor(0))
}

func TestParseRoleAndDifficulty(t *testing.T) {
	r, ok := ParseRole(" Backend ")
	assert.True(t, ok)
	assert.Equal(t, RoleBackend, r)
	assert.Equal(t, "Node.js", r.DefaultSkill())

	_, ok = ParseRole("designer")
	assert.False(t, ok)

	d, ok := ParseDifficulty("HARD")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, d)

	_, ok = ParseDifficulty("extreme")
	assert.False(t, ok)
}
