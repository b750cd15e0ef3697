package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo represents a single to-do item owned by a user
type Todo struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Deadline  time.Time `json:"deadline"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy of the todo
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}

// CloneTodos copies a todo list, always returning a non-nil slice
func CloneTodos(todos []*Todo) []*Todo {
	out := make([]*Todo, len(todos))
	for i, t := range todos {
		out[i] = t.Clone()
	}
	return out
}
