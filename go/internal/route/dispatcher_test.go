package route

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/todolist/go/internal/apperr"
	"github.com/mcdev12/todolist/go/internal/models"
	"github.com/mcdev12/todolist/go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, d *Dispatcher, rt Route, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	d.Register(mux, rt)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestStepsRunInOrderAndShortCircuit(t *testing.T) {
	var calls []string
	step := func(name string, err error) Step {
		return func(sc *Scope) error {
			calls = append(calls, name)
			return err
		}
	}

	rt := Route{
		Method:  http.MethodGet,
		Pattern: "/things",
		Steps: []Step{
			step("first", nil),
			step("second", apperr.NotFound("Thing not found!")),
			step("third", nil),
		},
		Handle: func(sc *Scope) (Result, error) {
			calls = append(calls, "handler")
			return OK("unreachable"), nil
		},
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodGet, "/things", nil))

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Thing not found!"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestStepsShareScope(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "a", Todos: []*models.Todo{}}
	rt := Route{
		Method:  http.MethodGet,
		Pattern: "/me",
		Steps: []Step{
			func(sc *Scope) error {
				sc.User = user
				return nil
			},
		},
		Handle: func(sc *Scope) (Result, error) {
			return OK(sc.User.Clone()), nil
		},
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodGet, "/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, user.ID, got.ID)
}

func TestModeSelectsTransaction(t *testing.T) {
	var writable []bool
	handle := func(sc *Scope) (Result, error) {
		err := sc.Tx.InsertUser(&models.User{ID: uuid.New()})
		writable = append(writable, !errors.Is(err, store.ErrReadOnly))
		return NoContent(), nil
	}
	d := NewDispatcher(store.New())

	serve(t, d, Route{Method: http.MethodGet, Pattern: "/r", Mode: Read, Handle: handle},
		httptest.NewRequest(http.MethodGet, "/r", nil))
	serve(t, d, Route{Method: http.MethodPost, Pattern: "/w", Mode: Write, Handle: handle},
		httptest.NewRequest(http.MethodPost, "/w", nil))

	assert.Equal(t, []bool{false, true}, writable)
}

func TestNoContentHasEmptyBody(t *testing.T) {
	rt := Route{
		Method:  http.MethodDelete,
		Pattern: "/x",
		Handle:  func(sc *Scope) (Result, error) { return NoContent(), nil },
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodDelete, "/x", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUnknownErrorIsInternal(t *testing.T) {
	rt := Route{
		Method:  http.MethodGet,
		Pattern: "/x",
		Handle:  func(sc *Scope) (Result, error) { return Result{}, errors.New("boom") },
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestUnencodableBodyIsInternal(t *testing.T) {
	rt := Route{
		Method:  http.MethodGet,
		Pattern: "/x",
		Handle: func(sc *Scope) (Result, error) {
			return OK(map[string]any{"deadline": time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)}), nil
		},
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestMethodMismatch(t *testing.T) {
	rt := Route{
		Method:  http.MethodPost,
		Pattern: "/x",
		Handle:  func(sc *Scope) (Result, error) { return OK("ok"), nil },
	}

	rec := serve(t, NewDispatcher(store.New()), rt, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		payload string
		want    string
		wantErr error
	}{
		{"valid", `{"name":"A"}`, "A", nil},
		{"empty", ``, "", nil},
		{"malformed", `{"name":`, "", ErrInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var b body
			err := DecodeJSON(req, &b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Name)
		})
	}
}
