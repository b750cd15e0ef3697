package users

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/todolist/go/internal/models"
	"github.com/rs/zerolog/log"
)

// App handles users business logic
type App struct {
	newID func() uuid.UUID
}

// NewApp creates a new users App
func NewApp() *App {
	return &App{newID: uuid.New}
}

// CreateUser creates a free-plan user with no todos
func (a *App) CreateUser(repo Repository, req CreateUserRequest) (*models.User, error) {
	if repo.UsernameExists(req.Username) {
		return nil, ErrUsernameExists
	}

	user := &models.User{
		ID:       a.newID(),
		Name:     req.Name,
		Username: req.Username,
		Pro:      false,
		Todos:    []*models.Todo{},
	}

	if err := repo.InsertUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("created user")
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(repo Repository, id string) (*models.User, error) {
	user, ok := repo.UserByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username
func (a *App) GetUserByUsername(repo Repository, username string) (*models.User, error) {
	user, ok := repo.UserByUsername(username)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpgradeToPro moves a free-plan user to the pro plan
func (a *App) UpgradeToPro(user *models.User) error {
	if user.Pro {
		return ErrProAlreadyActivated
	}
	user.Pro = true

	log.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("activated pro plan")
	return nil
}
