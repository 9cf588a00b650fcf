package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/tasks"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNotOpen       = errors.New("no task is being edited")
)

// FieldError reports a form field whose input could not be used
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Form is the raw input of the create/edit surface
type Form struct {
	Title       string
	Description string
	Assignee    string
	Priority    string
	Status      string
	StartDate   string
	DueDate     string
	Estimate    string
	Tags        string
}

// NewForm returns the inputs a fresh "new task" form starts with
func NewForm() Form {
	return Form{
		Assignee: string(models.Roster[0]),
		Priority: string(models.PriorityMedium),
		Status:   string(models.StatusBacklog),
		Estimate: "4",
	}
}

// FormFor fills the form from an existing task
func FormFor(t models.Task) Form {
	return Form{
		Title:       t.Title,
		Description: t.Description,
		Assignee:    string(t.Assignee),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		StartDate:   t.StartDate.String(),
		DueDate:     t.DueDate.String(),
		Estimate:    tasks.FormatEstimate(t.EstimateHours),
		Tags:        tasks.FormatTags(t.Tags),
	}
}

// Options validates the form and converts it into a full set of field
// options. The estimate and tags are coerced, never rejected.
func (f Form) Options() ([]tasks.Option, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, ErrTitleRequired
	}
	assignee, err := models.ParseAssignee(f.Assignee)
	if err != nil {
		return nil, &FieldError{Field: "assignee", Err: err}
	}
	priority, err := models.ParsePriority(f.Priority)
	if err != nil {
		return nil, &FieldError{Field: "priority", Err: err}
	}
	status, err := models.ParseStatus(f.Status)
	if err != nil {
		return nil, &FieldError{Field: "status", Err: err}
	}
	start, err := models.ParseDate(strings.TrimSpace(f.StartDate))
	if err != nil {
		return nil, &FieldError{Field: "startDate", Err: err}
	}
	due, err := models.ParseDate(strings.TrimSpace(f.DueDate))
	if err != nil {
		return nil, &FieldError{Field: "dueDate", Err: err}
	}

	return []tasks.Option{
		tasks.WithTitle(f.Title),
		tasks.WithDescription(f.Description),
		tasks.WithAssignee(assignee),
		tasks.WithPriority(priority),
		tasks.WithStatus(status),
		tasks.WithStartDate(start),
		tasks.WithDueDate(due),
		tasks.WithEstimate(tasks.ParseEstimate(f.Estimate)),
		tasks.WithTags(tasks.ParseTags(f.Tags)),
	}, nil
}
