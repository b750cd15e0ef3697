package todos

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/todolist/go/internal/models"
	"github.com/mcdev12/todolist/go/internal/users"
	"github.com/rs/zerolog/log"
)

// DefaultFreePlanLimit is the number of todos a free-plan user may hold
const DefaultFreePlanLimit = 10

// App handles todos business logic
type App struct {
	users         *users.App
	clock         clockwork.Clock
	newID         func() uuid.UUID
	freePlanLimit int
}

// NewApp creates a new todos App. A non-positive limit falls back to DefaultFreePlanLimit.
func NewApp(usersApp *users.App, clock clockwork.Clock, freePlanLimit int) *App {
	if freePlanLimit <= 0 {
		freePlanLimit = DefaultFreePlanLimit
	}
	return &App{
		users:         usersApp,
		clock:         clock,
		newID:         uuid.New,
		freePlanLimit: freePlanLimit,
	}
}

// CanCreate reports whether user may add another todo.
// Only an exact match on the limit blocks creation.
func (a *App) CanCreate(user *models.User) error {
	if !user.Pro && len(user.Todos) == a.freePlanLimit {
		return LimitReachedError(a.freePlanLimit)
	}
	return nil
}

// ListTodos returns a snapshot of the user's todos in insertion order
func (a *App) ListTodos(user *models.User) []*models.Todo {
	return models.CloneTodos(user.Todos)
}

// CreateTodo appends a new pending todo to the user's list
func (a *App) CreateTodo(user *models.User, req TodoRequest) (*models.Todo, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		ID:        a.newID(),
		Title:     req.Title,
		Deadline:  deadline,
		Done:      false,
		CreatedAt: a.clock.Now().UTC(),
	}
	user.Todos = append(user.Todos, todo)

	log.Info().Str("username", user.Username).Str("todo_id", todo.ID.String()).Msg("created todo")
	return todo, nil
}

// UpdateTodo overwrites the title and deadline of todo
func (a *App) UpdateTodo(todo *models.Todo, req TodoRequest) error {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return err
	}
	todo.Title = req.Title
	todo.Deadline = deadline
	return nil
}

// MarkDone flags todo as completed
func (a *App) MarkDone(todo *models.Todo) {
	todo.Done = true
}

// DeleteTodo removes todo from the user's list by identity
func (a *App) DeleteTodo(user *models.User, todo *models.Todo) error {
	idx := user.IndexOfTodo(todo)
	if idx == -1 {
		return ErrTodoIndexMissing
	}
	user.Todos = append(user.Todos[:idx], user.Todos[idx+1:]...)

	log.Info().Str("username", user.Username).Str("todo_id", todo.ID.String()).Msg("deleted todo")
	return nil
}
