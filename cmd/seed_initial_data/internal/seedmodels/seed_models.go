package seedmodels

import "career-accelerator/internal/domain"

// SeedSkill defines the structure for a skill item in the JSON seed file.
type SeedSkill struct {
	Name            string               `json:"name"`
	Role            string               `json:"role"`
	PopularityScore int                  `json:"popularityScore"`
	SalaryRanges    []domain.SalaryRange `json:"salaryRanges"`
	DemandRanges    []domain.DemandRange `json:"demandRanges"`
}

// ToDomain converts the seed entry. Unknown roles are kept verbatim so Validate reports them.
func (s SeedSkill) ToDomain() *domain.Skill {
	role, ok := domain.ParseRole(s.Role)
	if !ok {
		role = domain.Role(s.Role)
	}
	return &domain.Skill{
		Name:            s.Name,
		Role:            role,
		PopularityScore: s.PopularityScore,
		SalaryRanges:    s.SalaryRanges,
		DemandRanges:    s.DemandRanges,
	}
}
