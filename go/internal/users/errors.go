package users

import (
	"net/http"

	"github.com/mcdev12/todolist/go/internal/apperr"
)

var (
	ErrUserNotFound        = apperr.NotFound("User not found!")
	ErrUsernameExists      = apperr.Conflict(http.StatusBadRequest, "Username already exists")
	ErrProAlreadyActivated = apperr.Conflict(http.StatusBadRequest, "Pro plan is already activated.")
)
