package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID           string    `db:"ID"` // ULID
	Name         string    `db:"NAME"`
	Email        string    `db:"EMAIL"` // lower-cased, unique
	PasswordHash string    `db:"PASSWORD_HASH"`
	CreatedAt    time.Time `db:"CREATED_AT"`
	UpdatedAt    time.Time `db:"UPDATED_AT"`
}

// QuizAttempt is a row of quiz_attempts. Strengths and weaknesses are JSON arrays in CLOB columns.
// Skill, role and difficulty are optional on a submission and stored as NULL when empty.
type QuizAttempt struct {
	ID             string         `db:"ID"`
	UserID         string         `db:"USER_ID"`
	Skill          sql.NullString `db:"SKILL"`
	Role           sql.NullString `db:"ROLE"`
	Difficulty     sql.NullString `db:"DIFFICULTY"`
	TotalQuestions int            `db:"TOTAL_QUESTIONS"`
	CorrectAnswers int            `db:"CORRECT_ANSWERS"`
	Accuracy       int            `db:"ACCURACY"`
	Score          int            `db:"SCORE"`
	LevelName      string         `db:"LEVEL_NAME"`
	Strengths      StringSlice    `db:"STRENGTHS"`
	Weaknesses     StringSlice    `db:"WEAKNESSES"`
	CreatedAt      time.Time      `db:"CREATED_AT"`
}

// SalaryRange and DemandRange mirror the JSON stored in the skills table.
type SalaryRange struct {
	Level string `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

type DemandRange struct {
	Level       string `json:"level"`
	DemandScore int    `json:"demandScore"`
}

// Skill is a row of the skills catalogue, unique on (name, role).
type Skill struct {
	ID              string                `db:"ID"`
	Name            string                `db:"NAME"`
	Role            string                `db:"ROLE"`
	PopularityScore int                   `db:"POPULARITY_SCORE"`
	SalaryRanges    JSONList[SalaryRange] `db:"SALARY_RANGES"`
	DemandRanges    JSONList[DemandRange] `db:"DEMAND_RANGES"`
	CreatedAt       time.Time             `db:"CREATED_AT"`
	UpdatedAt       time.Time             `db:"UPDATED_AT"`
}
