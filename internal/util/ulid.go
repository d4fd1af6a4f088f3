package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make draws from a process-wide
// monotonic entropy source and is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// NewQuestionID returns an ephemeral, sortable correlation ID for a generated question.
func NewQuestionID() string {
	return "q_" + NewULID()
}
