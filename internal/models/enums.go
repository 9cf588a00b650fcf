package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownPriority = errors.New("unknown priority")
	ErrUnknownAssignee = errors.New("unknown assignee")
)

// Status is the lifecycle stage of a task
type Status string

const (
	StatusBacklog    Status = "Backlog"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

// Statuses lists every status in board column order
var Statuses = []Status{StatusBacklog, StatusInProgress, StatusReview, StatusDone}

// Valid reports whether s is one of the four board statuses
func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// Index returns the column position of s, or -1
func (s Status) Index() int {
	switch s {
	case StatusBacklog:
		return 0
	case StatusInProgress:
		return 1
	case StatusReview:
		return 2
	case StatusDone:
		return 3
	}
	return -1
}

// ParseStatus returns the status spelled exactly as s
func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists every priority from least to most urgent
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ParsePriority returns the priority spelled exactly as s
func ParsePriority(s string) (Priority, error) {
	if p := Priority(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Assignee is a member of the fixed developer roster
type Assignee string

// Roster is the developer roster in display order. The first entry is the
// default assignee for new tasks.
var Roster = []Assignee{"Aarav", "Ishaan", "Diya", "Meera", "Kabir"}

func (a Assignee) Valid() bool {
	for _, r := range Roster {
		if a == r {
			return true
		}
	}
	return false
}

// ParseAssignee returns the roster member named s
func ParseAssignee(s string) (Assignee, error) {
	if a := Assignee(s); a.Valid() {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAssignee, s)
}
