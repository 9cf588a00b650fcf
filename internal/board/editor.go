package board

import (
	"github.com/tgienger/dgboard/internal/models"
)

// State of the editing surface
type State int

const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

// Editor tracks the single create/edit session. Only one session can be
// open at a time.
type Editor struct {
	state  State
	taskID string
}

func (e *Editor) State() State { return e.state }

// TaskID is the task being edited, empty unless Editing
func (e *Editor) TaskID() string { return e.taskID }

// Open starts a create session and returns the starting form
func (e *Editor) Open() (Form, bool) {
	if e.state != Closed {
		return Form{}, false
	}
	e.state = Creating
	return NewForm(), true
}

// Edit starts an edit session for t and returns the prefilled form
func (e *Editor) Edit(t models.Task) (Form, bool) {
	if e.state != Closed {
		return Form{}, false
	}
	e.state = Editing
	e.taskID = t.ID
	return FormFor(t), true
}

// Cancel closes the session without saving
func (e *Editor) Cancel() {
	e.state = Closed
	e.taskID = ""
}

// Submit saves the form: a create while Creating, a full field replacement
// while Editing. The session closes only when the save succeeds.
func (e *Editor) Submit(repo Repository, f Form) (models.Task, error) {
	if e.state == Closed {
		return models.Task{}, ErrNotOpen
	}
	opts, err := f.Options()
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if e.state == Creating {
		task, err = repo.Create(opts...)
	} else {
		task, err = repo.Update(e.taskID, opts...)
	}
	if err != nil {
		return models.Task{}, err
	}

	e.Cancel()
	return task, nil
}
