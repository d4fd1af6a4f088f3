package service

import (
	"context"
	"strings"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardSkillLimit   = 12
	dashboardAttemptLimit = 10
	allRoles              = "all"
)

// DashboardOverview combines the market view for a role with the user's latest quizzes.
type DashboardOverview struct {
	Skills         []domain.Skill
	RecentAttempts []domain.QuizAttempt
}

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	GetOverview(ctx context.Context, userID, role string) (*DashboardOverview, error)
}

type dashboardService struct {
	skills   domain.SkillRepository
	attempts domain.QuizAttemptRepository
}

func NewDashboardService(skills domain.SkillRepository, attempts domain.QuizAttemptRepository) DashboardService {
	return &dashboardService{skills: skills, attempts: attempts}
}

// GetOverview loads skills and attempts concurrently. role "" or "all" lists
// every role; any other value must be a known role.
func (s *dashboardService) GetOverview(ctx context.Context, userID, role string) (*DashboardOverview, error) {
	var filter domain.Role
	if r := strings.TrimSpace(role); r != "" && !strings.EqualFold(r, allRoles) {
		parsed, ok := domain.ParseRole(r)
		if !ok {
			return nil, domain.NewInvalidInputError("Unknown role").WithContext("role", role)
		}
		filter = parsed
	}

	overview := &DashboardOverview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := s.skills.ListTopSkills(gctx, filter, dashboardSkillLimit)
		if err != nil {
			return err
		}
		overview.Skills = skills
		return nil
	})
	g.Go(func() error {
		attempts, err := s.attempts.ListAttemptsByUser(gctx, userID, dashboardAttemptLimit)
		if err != nil {
			return err
		}
		overview.RecentAttempts = attempts
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to load dashboard overview", zap.String("user_id", userID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to load dashboard", err)
	}

	if overview.Skills == nil {
		overview.Skills = []domain.Skill{}
	}
	if overview.RecentAttempts == nil {
		overview.RecentAttempts = []domain.QuizAttempt{}
	}
	return overview, nil
}
