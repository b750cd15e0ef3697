package todos

import (
	"fmt"
	"net/http"

	"github.com/mcdev12/todolist/go/internal/apperr"
)

var (
	ErrInvalidTodoID   = apperr.BadRequest("Not valid todo ID!")
	ErrTodoNotFound    = apperr.NotFound("Todo not found!")
	ErrInvalidDeadline = apperr.BadRequest("Not valid deadline!")

	// ErrTodoIndexMissing is returned when a todo that passed the existence
	// check is no longer in its owner's list at removal time.
	ErrTodoIndexMissing = apperr.NotFound("Todo not found")
)

// LimitReachedError builds the 403 returned to free-plan users at their todo limit
func LimitReachedError(limit int) *apperr.Error {
	return apperr.Conflict(http.StatusForbidden,
		fmt.Sprintf("User already has %d todos, necessary update account to PRO to create a new todo.", limit))
}
