// Package board turns user gestures into repository mutations: dropping a
// card on a column and submitting the create/edit form.
package board

import (
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/tasks"
)

// Repository is the part of tasks.Repository the interaction layer needs
type Repository interface {
	Create(opts ...tasks.Option) (models.Task, error)
	Update(id string, opts ...tasks.Option) (models.Task, error)
	SetStatus(id string, status models.Status) (models.Task, error)
}

// Drop moves the dragged card to the column for status. It returns false,
// changing nothing, when id is empty or no longer exists.
func Drop(repo Repository, id string, status models.Status) bool {
	if id == "" || !status.Valid() {
		return false
	}
	_, err := repo.SetStatus(id, status)
	return err == nil
}

// Neighbor returns the column next to s in direction dir (-1 left, +1
// right). ok is false at the board edges.
func Neighbor(s models.Status, dir int) (models.Status, bool) {
	i := s.Index() + dir
	if s.Index() < 0 || i < 0 || i >= len(models.Statuses) {
		return s, false
	}
	return models.Statuses[i], true
}
