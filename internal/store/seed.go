package store

import (
	"time"

	"github.com/tgienger/dgboard/internal/models"
)

// Seed returns the demo board used on first run
func Seed(now time.Time, newID func() string) []models.Task {
	now = now.UTC()
	today := models.DateOf(now)

	return []models.Task{
		{
			ID:            newID(),
			Title:         "Setup project foundation",
			Description:   "Initialize repo, CI, and shared UI kit. Align linting & formatting.",
			Assignee:      "Aarav",
			Priority:      models.PriorityHigh,
			Status:        models.StatusInProgress,
			StartDate:     today,
			EstimateHours: 8,
			Tags:          []string{"infra", "ui"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Title:         "Auth flow",
			Description:   "Design login states and role-based access for managers.",
			Assignee:      "Diya",
			Priority:      models.PriorityCritical,
			Status:        models.StatusReview,
			StartDate:     today,
			EstimateHours: 12,
			Tags:          []string{"backend", "security"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Title:         "Stakeholder dashboard",
			Description:   "KPIs and delivery insights for Deepika Groups leadership.",
			Assignee:      "Meera",
			Priority:      models.PriorityMedium,
			Status:        models.StatusBacklog,
			EstimateHours: 16,
			Tags:          []string{"dashboard"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            newID(),
			Title:         "API contracts",
			Description:   "Document endpoints for task lifecycle and analytics.",
			Assignee:      "Kabir",
			Priority:      models.PriorityLow,
			Status:        models.StatusDone,
			DueDate:       today,
			EstimateHours: 6,
			Tags:          []string{"docs"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
