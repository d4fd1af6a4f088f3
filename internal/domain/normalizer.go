package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// RejectReason explains why an upstream item was not turned into a question.
type RejectReason string

const (
	RejectNotObject       RejectReason = "item is not an object"
	RejectMissingQuestion RejectReason = "question is missing or blank"
	RejectOptionsNotArray RejectReason = "options is not an array"
	RejectTooFewOptions   RejectReason = "fewer than 4 non-blank options"
	RejectBadCorrectIndex RejectReason = "correctIndex is not an integer in [0,3]"
)

// Validation is the outcome for one upstream item: either a question or a reason.
type Validation struct {
	Index    int
	Question *QuizQuestion
	Reason   RejectReason

	// Truncated is set when more than 4 options survived and the tail was cut.
	// correctIndex is kept as-is, so the answer key may no longer match the options.
	Truncated bool
}

func Valid(index int, q QuizQuestion, truncated bool) Validation {
	return Validation{Index: index, Question: &q, Truncated: truncated}
}

func Rejected(index int, reason RejectReason) Validation {
	return Validation{Index: index, Reason: reason}
}

func (v Validation) IsValid() bool {
	return v.Question != nil
}

// NormalizeReport holds the accepted questions in input order plus one
// Validation per parsed item.
type NormalizeReport struct {
	Questions   []QuizQuestion
	Validations []Validation
	Parsed      int
}

// Rejections returns the items that were dropped.
func (r NormalizeReport) Rejections() []Validation {
	var out []Validation
	for _, v := range r.Validations {
		if !v.IsValid() {
			out = append(out, v)
		}
	}
	return out
}

// NormalizeQuestions extracts the JSON array embedded in raw and validates each
// element. Malformed elements are dropped; only an unparseable payload is an error.
// role, difficulty and skill always come from qc.
func NormalizeQuestions(raw string, qc QuizContext) (NormalizeReport, error) {
	candidate := extractArrayCandidate(raw)

	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	var parsed interface{}
	if err := dec.Decode(&parsed); err != nil {
		return NormalizeReport{}, fmt.Errorf("%w: %v", ErrInvalidUpstreamResponse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return NormalizeReport{}, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidUpstreamResponse)
	}

	var items []interface{}
	switch v := parsed.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		return NormalizeReport{}, nil
	default:
		return NormalizeReport{}, fmt.Errorf("%w: expected a JSON array, got %T", ErrInvalidUpstreamResponse, parsed)
	}

	report := NormalizeReport{
		Questions:   make([]QuizQuestion, 0, len(items)),
		Validations: make([]Validation, 0, len(items)),
		Parsed:      len(items),
	}
	for i, item := range items {
		v := validateItem(i, item, qc)
		report.Validations = append(report.Validations, v)
		if v.IsValid() {
			report.Questions = append(report.Questions, *v.Question)
		}
	}
	return report, nil
}

func extractArrayCandidate(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end != -1 && start < end {
		return raw[start : end+1]
	}
	return raw
}

func validateItem(index int, item interface{}, qc QuizContext) Validation {
	obj, ok := item.(map[string]interface{})
	if !ok {
		return Rejected(index, RejectNotObject)
	}

	text, _ := obj["question"].(string)
	text = strings.TrimSpace(text)
	if text == "" {
		return Rejected(index, RejectMissingQuestion)
	}

	rawOptions, ok := obj["options"].([]interface{})
	if !ok {
		return Rejected(index, RejectOptionsNotArray)
	}
	options := make([]string, 0, len(rawOptions))
	for _, o := range rawOptions {
		if s := strings.TrimSpace(stringify(o)); s != "" {
			options = append(options, s)
		}
	}
	if len(options) < OptionCount {
		return Rejected(index, RejectTooFewOptions)
	}
	truncated := len(options) > OptionCount
	options = options[:OptionCount]

	correct, ok := integerValue(obj["correctIndex"])
	if !ok || correct < 0 || correct >= OptionCount {
		return Rejected(index, RejectBadCorrectIndex)
	}

	return Valid(index, QuizQuestion{
		Skill:        qc.Skill,
		Role:         qc.Role,
		Difficulty:   qc.Difficulty,
		Question:     text,
		Options:      options,
		CorrectIndex: correct,
	}, truncated)
}

// stringify renders a decoded JSON value as option text. Non-string values use
// their JSON encoding, so 42 becomes "42" and null becomes "null".
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return ""
		}
		return strings.TrimRight(buf.String(), "\n")
	}
}

// integerValue accepts JSON numbers with no fractional part (2 and 2.0, not "2").
func integerValue(v interface{}) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, false
		}
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
