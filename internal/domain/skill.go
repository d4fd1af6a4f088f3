package domain

import (
	"context"
	"fmt"
	"time"
)

type SalaryRange struct {
	Level string `json:"level"` // entry, mid, senior
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

type DemandRange struct {
	Level       string `json:"level"` // beginner, intermediate, advanced
	DemandScore int    `json:"demandScore"`
}

// Skill is an entry in the market catalogue shown on the dashboard.
type Skill struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Role            Role          `json:"role"`
	PopularityScore int           `json:"popularityScore"`
	SalaryRanges    []SalaryRange `json:"salaryRanges"`
	DemandRanges    []DemandRange `json:"demandRanges"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

var (
	salaryLevels = map[string]bool{"entry": true, "mid": true, "senior": true}
	demandLevels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}
)

// Validate validates the skill
func (s *Skill) Validate() error {
	var errs ValidationErrors
	if s.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := ParseRole(string(s.Role)); !ok {
		errs = append(errs, ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", s.Role)})
	}
	if s.PopularityScore < 0 || s.PopularityScore > 100 {
		errs = append(errs, ValidationError{Field: "popularityScore", Message: "must be between 0 and 100"})
	}
	for _, r := range s.SalaryRanges {
		if !salaryLevels[r.Level] {
			errs = append(errs, ValidationError{Field: "salaryRanges.level", Message: fmt.Sprintf("unknown level %q", r.Level)})
		}
		if r.Min > r.Max {
			errs = append(errs, ValidationError{Field: "salaryRanges", Message: "min exceeds max"})
		}
	}
	for _, d := range s.DemandRanges {
		if !demandLevels[d.Level] {
			errs = append(errs, ValidationError{Field: "demandRanges.level", Message: fmt.Sprintf("unknown level %q", d.Level)})
		}
		if d.DemandScore < 0 || d.DemandScore > 100 {
			errs = append(errs, ValidationError{Field: "demandRanges.demandScore", Message: "must be between 0 and 100"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SkillRepository reads and maintains the skill catalogue.
type SkillRepository interface {
	// ListTopSkills orders by popularity, highest first. An empty role matches all roles.
	ListTopSkills(ctx context.Context, role Role, limit int) ([]Skill, error)
	// UpsertSkill inserts or replaces the skill identified by (name, role).
	UpsertSkill(ctx context.Context, skill *Skill) error
}
