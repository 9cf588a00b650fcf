package tasks

import (
	"slices"
	"strings"

	"github.com/tgienger/dgboard/internal/models"
)

// Option sets one field of a task. Fields without an option are left as
// they are, which is how partial updates are expressed.
type Option func(*models.Task)

func WithTitle(title string) Option {
	return func(t *models.Task) {
		t.Title = strings.TrimSpace(title)
	}
}

func WithDescription(description string) Option {
	return func(t *models.Task) {
		t.Description = description
	}
}

func WithAssignee(assignee models.Assignee) Option {
	return func(t *models.Task) {
		t.Assignee = assignee
	}
}

func WithPriority(priority models.Priority) Option {
	return func(t *models.Task) {
		t.Priority = priority
	}
}

func WithStatus(status models.Status) Option {
	return func(t *models.Task) {
		t.Status = status
	}
}

func WithStartDate(d models.Date) Option {
	return func(t *models.Task) {
		t.StartDate = d
	}
}

func WithDueDate(d models.Date) Option {
	return func(t *models.Task) {
		t.DueDate = d
	}
}

// WithEstimate sets the estimate, coercing negative or NaN values to 0
func WithEstimate(hours float64) Option {
	return func(t *models.Task) {
		t.EstimateHours = clampEstimate(hours)
	}
}

func WithTags(tags []string) Option {
	return func(t *models.Task) {
		t.Tags = slices.Clone(tags)
		if t.Tags == nil {
			t.Tags = []string{}
		}
	}
}
