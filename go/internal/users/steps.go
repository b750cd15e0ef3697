package users

import (
	"github.com/mcdev12/todolist/go/internal/route"
)

// UsernameHeader identifies the caller on todo endpoints
const UsernameHeader = "username"

// FindUserByID resolves the {id} path segment to a user
func (a *App) FindUserByID(sc *route.Scope) error {
	user, err := a.GetUser(sc.Tx, sc.Request.PathValue("id"))
	if err != nil {
		return err
	}
	sc.User = user
	return nil
}

// FindUserByUsername resolves the username header to a user
func (a *App) FindUserByUsername(sc *route.Scope) error {
	user, err := a.GetUserByUsername(sc.Tx, sc.Request.Header.Get(UsernameHeader))
	if err != nil {
		return err
	}
	sc.User = user
	return nil
}
