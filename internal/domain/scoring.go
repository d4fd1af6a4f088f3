package domain

import "math"

const (
	advancedThreshold     = 75
	intermediateThreshold = 45
)

// ScoreSubmission grades answers against questions by question ID.
// Answers that reference an unknown question are skipped and counted in
// Unmatched. A question whose ID appears more than once resolves to the last one.
// Callers must reject an empty answer list before calling.
func ScoreSubmission(questions []QuizQuestion, answers []AnswerSubmission) QuizResult {
	byID := make(map[string]QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var (
		correct    int
		unmatched  int
		strengths  = newOrderedSet()
		weaknesses = newOrderedSet()
	)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			unmatched++
			continue
		}
		if a.SelectedIndex == q.CorrectIndex {
			correct++
			strengths.add(q.Skill)
		} else {
			weaknesses.add(q.Skill)
		}
	}

	total := len(answers)
	accuracy := Accuracy(correct, total)
	return QuizResult{
		TotalQuestions: total,
		CorrectAnswers: correct,
		Accuracy:       accuracy,
		Level:          LevelFor(accuracy),
		Strengths:      strengths.items,
		Weaknesses:     weaknesses.items,
		Unmatched:      unmatched,
	}
}

// Accuracy is correct/total as a whole percentage, rounded half away from zero.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func LevelFor(accuracy int) Level {
	switch {
	case accuracy >= advancedThreshold:
		return LevelAdvanced
	case accuracy >= intermediateThreshold:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
