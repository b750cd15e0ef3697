package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/todolist/go/internal/config"
	"github.com/mcdev12/todolist/go/internal/todos"
	"github.com/mcdev12/todolist/go/internal/users"
)

type Services struct {
	Users *users.Service
	Todos *todos.Service
}

func setupServices(cfg config.Config, clock clockwork.Clock) *Services {
	// App layer → Service layer. The store is bound per request by the dispatcher.

	// Users
	userApp := users.NewApp()
	userService := users.NewService(userApp)

	// Todos
	todoApp := todos.NewApp(userApp, clock, cfg.Todos.FreePlanLimit)
	todoService := todos.NewService(todoApp, userApp)

	return &Services{
		Users: userService,
		Todos: todoService,
	}
}
