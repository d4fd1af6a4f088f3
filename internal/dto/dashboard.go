package dto

import "career-accelerator/internal/domain"

// DashboardOverviewResponse
// @Description Top skills for a role and the user's latest quiz attempts
type DashboardOverviewResponse struct {
	Skills             []domain.Skill        `json:"skills"`
	RecentQuizAttempts []QuizAttemptResponse `json:"recentQuizAttempts"`
}
