package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validation errors returned by Task.Validate
var (
	ErrEmptyID       = errors.New("task id is empty")
	ErrEmptyTitle    = errors.New("task title is required")
	ErrBadEstimate   = errors.New("estimate hours must be a non-negative number")
	ErrTimestampSkew = errors.New("updatedAt is before createdAt")
)

// Task represents a single unit of trackable work on the board
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Assignee      Assignee  `json:"assignee"`
	Priority      Priority  `json:"priority"`
	Status        Status    `json:"status"`
	StartDate     Date      `json:"startDate"`
	DueDate       Date      `json:"dueDate"`
	EstimateHours float64   `json:"estimateHours"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Clone returns a copy of the task that shares no memory with t
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// Validate reports the first constraint the task violates
func (t Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(t.Status))
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPriority, string(t.Priority))
	}
	if !t.Assignee.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAssignee, string(t.Assignee))
	}
	if t.EstimateHours < 0 || t.EstimateHours != t.EstimateHours {
		return ErrBadEstimate
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrTimestampSkew
	}
	return nil
}

// Theme is the persisted color scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value to a theme, defaulting to dark
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
