// Package projection derives the read-only views of the board from a task
// snapshot. Every function here is pure and keeps the snapshot's order.
package projection

import (
	"strings"

	"github.com/tgienger/dgboard/internal/models"
)

// All is the selector value that disables the assignee or priority filter
const All = "All"

// Filter holds the predicates shared by the board and completed views.
// Empty or All selections match every task.
type Filter struct {
	Assignee string
	Priority string
	Query    string
}

// Active reports whether any predicate narrows the result
func (f Filter) Active() bool {
	return !isAll(f.Assignee) || !isAll(f.Priority) || f.Query != ""
}

// Match reports whether t satisfies every predicate of f
func (f Filter) Match(t models.Task) bool {
	if !isAll(f.Assignee) && string(t.Assignee) != f.Assignee {
		return false
	}
	if !isAll(f.Priority) && string(t.Priority) != f.Priority {
		return false
	}
	if f.Query != "" {
		haystack := strings.ToLower(t.Title + " " + t.Description)
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}
	return true
}

func isAll(sel string) bool {
	return sel == "" || sel == All
}

// Columns is the board partitioned by status
type Columns struct {
	Backlog    []models.Task
	InProgress []models.Task
	Review     []models.Task
	Done       []models.Task
}

// Column returns the bucket for s
func (c Columns) Column(s models.Status) []models.Task {
	switch s {
	case models.StatusBacklog:
		return c.Backlog
	case models.StatusInProgress:
		return c.InProgress
	case models.StatusReview:
		return c.Review
	case models.StatusDone:
		return c.Done
	}
	return nil
}

// Board groups the tasks matching f into the four columns. The Done column
// holds the Done tasks that match f; the other three never contain a Done
// task.
func Board(tasks []models.Task, f Filter) Columns {
	var c Columns
	for _, t := range tasks {
		if !f.Match(t) {
			continue
		}
		switch t.Status {
		case models.StatusBacklog:
			c.Backlog = append(c.Backlog, t)
		case models.StatusInProgress:
			c.InProgress = append(c.InProgress, t)
		case models.StatusReview:
			c.Review = append(c.Review, t)
		case models.StatusDone:
			c.Done = append(c.Done, t)
		}
	}
	return c
}

// CompletedFilter narrows the completed view. From and To are inclusive;
// the zero Date leaves that side open.
type CompletedFilter struct {
	Filter
	From models.Date
	To   models.Date
}

// Match reports whether a Done task passes f
func (f CompletedFilter) Match(t models.Task) bool {
	if t.Status != models.StatusDone || !f.Filter.Match(t) {
		return false
	}
	if !f.From.IsZero() && (t.DueDate.IsZero() || t.DueDate.Before(f.From)) {
		return false
	}
	if !f.To.IsZero() && (t.DueDate.IsZero() || t.DueDate.After(f.To)) {
		return false
	}
	return true
}

// Completed returns the Done tasks matching f
func Completed(tasks []models.Task, f CompletedFilter) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Metrics are tallies over the whole, unfiltered collection
type Metrics struct {
	Total      int
	InProgress int
	Review     int
	Done       int
}

func Summarize(tasks []models.Task) Metrics {
	m := Metrics{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusInProgress:
			m.InProgress++
		case models.StatusReview:
			m.Review++
		case models.StatusDone:
			m.Done++
		}
	}
	return m
}

// Assignees lists the distinct assignees of tasks in first-seen order
func Assignees(tasks []models.Task) []models.Assignee {
	seen := make(map[models.Assignee]bool)
	var out []models.Assignee
	for _, t := range tasks {
		if !seen[t.Assignee] {
			seen[t.Assignee] = true
			out = append(out, t.Assignee)
		}
	}
	return out
}
