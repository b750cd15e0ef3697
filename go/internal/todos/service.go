package todos

import (
	"net/http"

	"github.com/mcdev12/todolist/go/internal/route"
	"github.com/mcdev12/todolist/go/internal/users"
)

// Service exposes the todos endpoints
type Service struct {
	app   *App
	users *users.App
}

// NewService creates a new todos HTTP service
func NewService(app *App, usersApp *users.App) *Service {
	return &Service{app: app, users: usersApp}
}

// Routes returns the todos routes in registration order
func (s *Service) Routes() []route.Route {
	return []route.Route{
		{
			Method:  http.MethodGet,
			Pattern: "/todos",
			Mode:    route.Read,
			Steps:   []route.Step{s.users.FindUserByUsername},
			Handle:  s.ListTodos,
		},
		{
			Method:  http.MethodPost,
			Pattern: "/todos",
			Mode:    route.Write,
			Steps:   []route.Step{s.users.FindUserByUsername, s.app.CheckCreateAvailability},
			Handle:  s.CreateTodo,
		},
		{
			Method:  http.MethodPut,
			Pattern: "/todos/{id}",
			Mode:    route.Write,
			Steps:   []route.Step{s.app.CheckTodoExists},
			Handle:  s.UpdateTodo,
		},
		{
			Method:  http.MethodPatch,
			Pattern: "/todos/{id}/done",
			Mode:    route.Write,
			Steps:   []route.Step{s.app.CheckTodoExists},
			Handle:  s.MarkDone,
		},
		{
			// The user is resolved twice; both lookups must pass.
			Method:  http.MethodDelete,
			Pattern: "/todos/{id}",
			Mode:    route.Write,
			Steps:   []route.Step{s.users.FindUserByUsername, s.app.CheckTodoExists},
			Handle:  s.DeleteTodo,
		},
	}
}

// ListTodos handles GET /todos
func (s *Service) ListTodos(sc *route.Scope) (route.Result, error) {
	return route.OK(s.app.ListTodos(sc.User)), nil
}

// CreateTodo handles POST /todos
func (s *Service) CreateTodo(sc *route.Scope) (route.Result, error) {
	var req TodoRequest
	if err := route.DecodeJSON(sc.Request, &req); err != nil {
		return route.Result{}, err
	}

	todo, err := s.app.CreateTodo(sc.User, req)
	if err != nil {
		return route.Result{}, err
	}
	return route.Created(todo.Clone()), nil
}

// UpdateTodo handles PUT /todos/{id}
func (s *Service) UpdateTodo(sc *route.Scope) (route.Result, error) {
	var req TodoRequest
	if err := route.DecodeJSON(sc.Request, &req); err != nil {
		return route.Result{}, err
	}

	if err := s.app.UpdateTodo(sc.Todo, req); err != nil {
		return route.Result{}, err
	}
	return route.OK(sc.Todo.Clone()), nil
}

// MarkDone handles PATCH /todos/{id}/done
func (s *Service) MarkDone(sc *route.Scope) (route.Result, error) {
	s.app.MarkDone(sc.Todo)
	return route.OK(sc.Todo.Clone()), nil
}

// DeleteTodo handles DELETE /todos/{id}
func (s *Service) DeleteTodo(sc *route.Scope) (route.Result, error) {
	if err := s.app.DeleteTodo(sc.User, sc.Todo); err != nil {
		return route.Result{}, err
	}
	return route.NoContent(), nil
}
