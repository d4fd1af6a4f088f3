package repository

import (
	"context"
	"fmt"
	"time"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/repository/models"
	"career-accelerator/internal/util"

	"github.com/jmoiron/sqlx"
)

const skillColumns = `id, name, role, popularity_score, salary_ranges, demand_ranges, created_at, updated_at`

// upsertSkillQuery keys on (name, role). Every placeholder is distinct because
// Oracle positional binds are consumed in order of appearance.
const upsertSkillQuery = `MERGE INTO skills s
USING (SELECT :1 AS name, :2 AS role FROM dual) src
ON (s.name = src.name AND s.role = src.role)
WHEN MATCHED THEN UPDATE SET
	s.popularity_score = :3, s.salary_ranges = :4, s.demand_ranges = :5, s.updated_at = :6
WHEN NOT MATCHED THEN INSERT (` + skillColumns + `)
	VALUES (:7, :8, :9, :10, :11, :12, :13, :14)`

type sqlxSkillRepository struct {
	db *sqlx.DB
}

// NewSQLXSkillRepository creates a new instance of sqlxSkillRepository.
func NewSQLXSkillRepository(db *sqlx.DB) domain.SkillRepository {
	return &sqlxSkillRepository{db: db}
}

func toDomainSkill(m *models.Skill) domain.Skill {
	salary := make([]domain.SalaryRange, 0, len(m.SalaryRanges))
	for _, s := range m.SalaryRanges {
		salary = append(salary, domain.SalaryRange{Level: s.Level, Min: s.Min, Max: s.Max})
	}
	demand := make([]domain.DemandRange, 0, len(m.DemandRanges))
	for _, d := range m.DemandRanges {
		demand = append(demand, domain.DemandRange{Level: d.Level, DemandScore: d.DemandScore})
	}
	return domain.Skill{
		ID:              m.ID,
		Name:            m.Name,
		Role:            domain.Role(m.Role),
		PopularityScore: m.PopularityScore,
		SalaryRanges:    salary,
		DemandRanges:    demand,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromDomainSkill(s *domain.Skill) *models.Skill {
	salary := make(models.JSONList[models.SalaryRange], 0, len(s.SalaryRanges))
	for _, r := range s.SalaryRanges {
		salary = append(salary, models.SalaryRange{Level: r.Level, Min: r.Min, Max: r.Max})
	}
	demand := make(models.JSONList[models.DemandRange], 0, len(s.DemandRanges))
	for _, d := range s.DemandRanges {
		demand = append(demand, models.DemandRange{Level: d.Level, DemandScore: d.DemandScore})
	}
	return &models.Skill{
		ID:              s.ID,
		Name:            s.Name,
		Role:            string(s.Role),
		PopularityScore: s.PopularityScore,
		SalaryRanges:    salary,
		DemandRanges:    demand,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ListTopSkills orders by popularity, highest first. An empty role matches every role.
func (r *sqlxSkillRepository) ListTopSkills(ctx context.Context, role domain.Role, limit int) ([]domain.Skill, error) {
	var (
		query string
		args  []interface{}
	)
	if role == "" {
		query = `SELECT ` + skillColumns + ` FROM skills ORDER BY popularity_score DESC, name FETCH FIRST :1 ROWS ONLY`
		args = []interface{}{limit}
	} else {
		query = `SELECT ` + skillColumns + ` FROM skills WHERE role = :1 ORDER BY popularity_score DESC, name FETCH FIRST :2 ROWS ONLY`
		args = []interface{}{string(role), limit}
	}

	var rows []models.Skill
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list top skills: %w", err)
	}

	skills := make([]domain.Skill, 0, len(rows))
	for i := range rows {
		skills = append(skills, toDomainSkill(&rows[i]))
	}
	return skills, nil
}

// UpsertSkill validates the skill and inserts or updates it by (name, role).
func (r *sqlxSkillRepository) UpsertSkill(ctx context.Context, skill *domain.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}
	now := time.Now()
	if skill.ID == "" {
		skill.ID = util.NewULID()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = now
	}
	skill.UpdatedAt = now

	m := fromDomainSkill(skill)
	salary, err := m.SalaryRanges.Value()
	if err != nil {
		return fmt.Errorf("failed to encode salary ranges: %w", err)
	}
	demand, err := m.DemandRanges.Value()
	if err != nil {
		return fmt.Errorf("failed to encode demand ranges: %w", err)
	}

	_, err = GetExecutor(ctx, r.db).ExecContext(ctx, upsertSkillQuery,
		m.Name, m.Role,
		m.PopularityScore, salary, demand, m.UpdatedAt,
		m.ID, m.Name, m.Role, m.PopularityScore, salary, demand, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill %q: %w", skill.Name, err)
	}
	return nil
}
