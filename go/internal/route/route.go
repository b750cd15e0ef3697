// Package route composes per-endpoint validation chains and runs them
// against the store.
//
// A Route is an ordered list of Steps followed by a Handler. Steps either
// resolve something onto the Scope and return nil, or return an error that
// ends the request. The whole chain executes inside a single store
// transaction so that a lookup and the mutation depending on it cannot
// interleave with another request.
package route

import (
	"fmt"
	"net/http"

	"github.com/mcdev12/todolist/go/internal/models"
	"github.com/mcdev12/todolist/go/internal/store"
)

// Mode selects the store lock a route runs under
type Mode int

const (
	Read Mode = iota
	Write
)

// Scope carries what earlier steps resolved to later steps and the handler
type Scope struct {
	Tx      *store.Tx
	Request *http.Request
	User    *models.User
	Todo    *models.Todo
}

// Step is one validation or lookup stage
type Step func(sc *Scope) error

// Result is a successful terminal response. A nil Body writes no payload.
type Result struct {
	Status int
	Body   any
}

// Handler is the terminal stage of a route
type Handler func(sc *Scope) (Result, error)

// Route binds a method and path pattern to its chain
type Route struct {
	Method  string
	Pattern string
	Mode    Mode
	Steps   []Step
	Handle  Handler
}

// String returns the ServeMux pattern for the route
func (rt Route) String() string {
	return fmt.Sprintf("%s %s", rt.Method, rt.Pattern)
}

// OK wraps body in a 200 result
func OK(body any) Result {
	return Result{Status: http.StatusOK, Body: body}
}

// Created wraps body in a 201 result
func Created(body any) Result {
	return Result{Status: http.StatusCreated, Body: body}
}

// NoContent is a 204 result with an empty body
func NoContent() Result {
	return Result{Status: http.StatusNoContent}
}
