package todos

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/todolist/go/internal/route"
	"github.com/mcdev12/todolist/go/internal/users"
)

// CheckCreateAvailability rejects free-plan users already at the todo limit.
// It expects the user to be resolved by an earlier step.
func (a *App) CheckCreateAvailability(sc *route.Scope) error {
	return a.CanCreate(sc.User)
}

// CheckTodoExists validates the {id} path segment, resolves the caller from
// the username header and then the todo within that user's list.
func (a *App) CheckTodoExists(sc *route.Scope) error {
	id := sc.Request.PathValue("id")
	if !validTodoID(id) {
		return ErrInvalidTodoID
	}

	user, err := a.users.GetUserByUsername(sc.Tx, sc.Request.Header.Get(users.UsernameHeader))
	if err != nil {
		return err
	}

	todo := user.FindTodo(id)
	if todo == nil {
		return ErrTodoNotFound
	}

	sc.User = user
	sc.Todo = todo
	return nil
}

// validTodoID accepts only the hyphenated 36-character form of an RFC 4122
// UUID of versions 1 to 5, or the nil UUID. Case is not significant here,
// but lookups compare the raw string.
func validTodoID(s string) bool {
	if len(s) != 36 || strings.ContainsAny(s, "{}:") {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if id == uuid.Nil {
		return true
	}
	if v := id.Version(); v < 1 || v > 5 {
		return false
	}
	return id.Variant() == uuid.RFC4122
}
