package models

import "github.com/google/uuid"

// User represents an account and the todos it owns
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Pro      bool      `json:"pro"`
	Todos    []*Todo   `json:"todos"`
}

// Clone returns a deep copy of the user, including its todos
func (u *User) Clone() *User {
	c := *u
	c.Todos = make([]*Todo, len(u.Todos))
	for i, t := range u.Todos {
		c.Todos[i] = t.Clone()
	}
	return &c
}

// FindTodo returns the todo whose ID string matches id exactly, or nil
func (u *User) FindTodo(id string) *Todo {
	for _, t := range u.Todos {
		if t.ID.String() == id {
			return t
		}
	}
	return nil
}

// IndexOfTodo returns the position of todo in the user's list by identity, or -1
func (u *User) IndexOfTodo(todo *Todo) int {
	for i, t := range u.Todos {
		if t == todo {
			return i
		}
	}
	return -1
}
