// Package store holds the process-local user collection.
//
// Every read or mutation goes through View or Update, which hold the
// collection lock for the whole callback. Callers that mutate the models
// returned by a Tx must do so inside Update and must not retain the
// pointers after the callback returns.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/mcdev12/todolist/go/internal/models"
)

// ErrReadOnly is returned when a mutation is attempted inside View
var ErrReadOnly = errors.New("store: read-only transaction")

// Store owns the user collection
type Store struct {
	mu    sync.RWMutex
	users []*models.User
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// View runs fn with shared access to the collection
func (s *Store) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store view: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{store: s})
}

// Update runs fn with exclusive access to the collection
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store update: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{store: s, writable: true})
}

// Tx is a handle on the collection valid only for the duration of a View or Update callback
type Tx struct {
	store    *Store
	writable bool
}

// UserByUsername returns the first user whose username matches exactly
func (tx *Tx) UserByUsername(username string) (*models.User, bool) {
	for _, u := range tx.store.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// UserByID returns the user with the given ID
func (tx *Tx) UserByID(id string) (*models.User, bool) {
	for _, u := range tx.store.users {
		if u.ID.String() == id {
			return u, true
		}
	}
	return nil, false
}

// UsernameExists reports whether any user holds username
func (tx *Tx) UsernameExists(username string) bool {
	_, ok := tx.UserByUsername(username)
	return ok
}

// InsertUser appends user to the collection
func (tx *Tx) InsertUser(user *models.User) error {
	if !tx.writable {
		return ErrReadOnly
	}
	if user.ID == uuid.Nil {
		return fmt.Errorf("store: user %q has no id", user.Username)
	}
	tx.store.users = append(tx.store.users, user)
	return nil
}
