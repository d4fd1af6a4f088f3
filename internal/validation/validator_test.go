package validation

import (
	"testing"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestValidateQuizQuery(t *testing.T) {
	v := NewValidator(50)

	tests := []struct {
		name       string
		role       string
		difficulty string
		skill      string
		limit      string
		want       QuizQuery
		wantFields []string
	}{
		{
			name: "defaults skill from role", role: "frontend", difficulty: "easy",
			want: QuizQuery{Role: domain.RoleFrontend, Difficulty: domain.DifficultyEasy, Skill: "JavaScript"},
		},
		{
			name: "explicit skill and limit", role: "Backend", difficulty: "HARD", skill: " Go ", limit: "5",
			want: QuizQuery{Role: domain.RoleBackend, Difficulty: domain.DifficultyHard, Skill: "Go", Limit: 5},
		},
		{
			name: "limit capped", role: "data", difficulty: "medium", limit: "500",
			want: QuizQuery{Role: domain.RoleData, Difficulty: domain.DifficultyMedium, Skill: "Python", Limit: 50},
		},
		{name: "missing both", wantFields: []string{"role", "difficulty"}},
		{name: "unknown role", role: "wizard", difficulty: "easy", wantFields: []string{"role"}},
		{name: "bad difficulty", role: "data", difficulty: "expert", wantFields: []string{"difficulty"}},
		{name: "bad limit", role: "data", difficulty: "easy", limit: "ten", wantFields: []string{"limit"}},
		{name: "negative limit", role: "data", difficulty: "easy", limit: "-1", wantFields: []string{"limit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := v.ValidateQuizQuery(tt.role, tt.difficulty, tt.skill, tt.limit)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				assert.Equal(t, tt.want, got)
				return
			}
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestHasMissingQuizParams(t *testing.T) {
	assert.True(t, HasMissingQuizParams("", "easy"))
	assert.True(t, HasMissingQuizParams("data", " "))
	assert.False(t, HasMissingQuizParams("data", "easy"))
}

func TestValidateSubmitRequest(t *testing.T) {
	v := NewValidator(50)

	ok := &dto.SubmitQuizRequest{
		Role:       "backend",
		Difficulty: "easy",
		Answers:    []dto.SubmittedAnswer{{QuestionID: "q1", SelectedIndex: intPtr(-1)}, {QuestionID: "q2"}},
	}
	assert.Empty(t, v.ValidateSubmitRequest(ok))
	assert.Empty(t, v.ValidateSubmitRequest(&dto.SubmitQuizRequest{}))

	bad := &dto.SubmitQuizRequest{
		Role:    "wizard",
		Answers: []dto.SubmittedAnswer{{QuestionID: ""}, {QuestionID: "q", SelectedIndex: intPtr(4)}},
	}
	errs := v.ValidateSubmitRequest(bad)
	assert.Len(t, errs, 3)
}

func TestValidateSubmitRequest_QuestionAnswerKey(t *testing.T) {
	v := NewValidator(50)
	answers := []dto.SubmittedAnswer{{QuestionID: "q1", SelectedIndex: intPtr(0)}}

	tests := []struct {
		name      string
		question  dto.SubmittedQuestion
		wantCode  domain.ErrorCode
		wantValid bool
	}{
		{name: "present", question: dto.SubmittedQuestion{ID: "q1", Skill: "Go", CorrectIndex: intPtr(3)}, wantValid: true},
		{name: "missing", question: dto.SubmittedQuestion{ID: "q1", Skill: "Go"}, wantCode: domain.CodeMissingField},
		{name: "above range", question: dto.SubmittedQuestion{ID: "q1", Skill: "Go", CorrectIndex: intPtr(9)}, wantCode: domain.CodeOutOfRange},
		{name: "negative", question: dto.SubmittedQuestion{ID: "q1", Skill: "Go", CorrectIndex: intPtr(-1)}, wantCode: domain.CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateSubmitRequest(&dto.SubmitQuizRequest{
				Questions: []dto.SubmittedQuestion{tt.question},
				Answers:   answers,
			})
			if tt.wantValid {
				assert.Empty(t, errs)
				return
			}
			if assert.Len(t, errs, 1) {
				assert.Equal(t, "questions.correctIndex", errs[0].Field)
				assert.Equal(t, tt.wantCode, errs[0].Code)
			}
		})
	}
}
