package users

import (
	"github.com/mcdev12/todolist/go/internal/models"
	"github.com/mcdev12/todolist/go/internal/store"
)

// Repository defines what the app layer needs from the user collection
type Repository interface {
	UserByUsername(username string) (*models.User, bool)
	UserByID(id string) (*models.User, bool)
	UsernameExists(username string) bool
	InsertUser(user *models.User) error
}

var _ Repository = (*store.Tx)(nil)
