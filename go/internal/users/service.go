package users

import (
	"net/http"

	"github.com/mcdev12/todolist/go/internal/route"
)

// Service exposes the users endpoints
type Service struct {
	app *App
}

// NewService creates a new users HTTP service
func NewService(app *App) *Service {
	return &Service{app: app}
}

// Routes returns the users routes in registration order
func (s *Service) Routes() []route.Route {
	return []route.Route{
		{
			Method:  http.MethodPost,
			Pattern: "/users",
			Mode:    route.Write,
			Handle:  s.CreateUser,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/users/{id}",
			Mode:    route.Read,
			Steps:   []route.Step{s.app.FindUserByID},
			Handle:  s.GetUser,
		},
		{
			Method:  http.MethodPatch,
			Pattern: "/users/{id}/pro",
			Mode:    route.Write,
			Steps:   []route.Step{s.app.FindUserByID},
			Handle:  s.UpgradeToPro,
		},
	}
}

// CreateUser handles POST /users
func (s *Service) CreateUser(sc *route.Scope) (route.Result, error) {
	var req CreateUserRequest
	if err := route.DecodeJSON(sc.Request, &req); err != nil {
		return route.Result{}, err
	}

	user, err := s.app.CreateUser(sc.Tx, req)
	if err != nil {
		return route.Result{}, err
	}
	return route.Created(user.Clone()), nil
}

// GetUser handles GET /users/{id}
func (s *Service) GetUser(sc *route.Scope) (route.Result, error) {
	return route.OK(sc.User.Clone()), nil
}

// UpgradeToPro handles PATCH /users/{id}/pro
func (s *Service) UpgradeToPro(sc *route.Scope) (route.Result, error) {
	if err := s.app.UpgradeToPro(sc.User); err != nil {
		return route.Result{}, err
	}
	return route.OK(sc.User.Clone()), nil
}
