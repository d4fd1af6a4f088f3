package service

import (
	"fmt"

	"career-accelerator/internal/domain"
)

const questionPromptTemplate = `
You are an expert technical interviewer.
Generate exactly %d multiple-choice interview questions in STRICT JSON format.

Constraints:
- Role: %s
- Difficulty: %s (easy|medium|hard)
- Skill: %s
- Each question must have exactly 4 options.
- correctIndex must be 0..3.
- Make questions practical and interview-style, not trivia.

Return ONLY valid JSON (no markdown), in this shape:
[
  {
    "question": "string",
    "options": ["A","B","C","D"],
    "correctIndex": 0
  }
]
`

// buildQuestionPrompt renders the generation prompt for count questions.
func buildQuestionPrompt(count int, qc domain.QuizContext) string {
	return fmt.Sprintf(questionPromptTemplate, count, qc.Role, qc.Difficulty, qc.Skill)
}
