package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mcdev12/todolist/go/internal/apperr"
	"github.com/mcdev12/todolist/go/internal/store"
	"github.com/rs/zerolog/hlog"
)

// ErrInvalidBody is returned when a request body is not valid JSON
var ErrInvalidBody = apperr.BadRequest("Invalid request body")

// Dispatcher mounts routes and runs their chains against a store
type Dispatcher struct {
	store *store.Store
}

// NewDispatcher creates a dispatcher over s
func NewDispatcher(s *store.Store) *Dispatcher {
	return &Dispatcher{store: s}
}

// Register mounts every route on mux
func (d *Dispatcher) Register(mux *http.ServeMux, routes ...Route) {
	for _, rt := range routes {
		mux.Handle(rt.String(), d.Handler(rt))
	}
}

// Handler returns the http.Handler executing rt
func (d *Dispatcher) Handler(rt Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		run := d.store.View
		if rt.Mode == Write {
			run = d.store.Update
		}

		var res Result
		err := run(r.Context(), func(tx *store.Tx) error {
			sc := &Scope{Tx: tx, Request: r}
			for _, step := range rt.Steps {
				if err := step(sc); err != nil {
					return err
				}
			}
			var err error
			res, err = rt.Handle(sc)
			return err
		})
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteResult(w, r, res)
	})
}

// DecodeJSON reads the request body into dst. An empty body leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidBody
	}
	return nil
}

// WriteResult encodes a successful result
func WriteResult(w http.ResponseWriter, r *http.Request, res Result) {
	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	if res.Body == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, r, status, res.Body)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteError encodes err as {"error": message} with its status code
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	logger := hlog.FromRequest(r)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Err(err).Msg("request cancelled before handling")
	case appErr.Kind == apperr.KindInternal:
		logger.Error().Err(err).Msg("request failed")
	default:
		logger.Debug().Str("kind", appErr.Kind.String()).Int("status", appErr.Status).Msg(appErr.Message)
	}
	writeJSON(w, r, appErr.Status, errorBody{Error: appErr.Message})
}

// writeJSON encodes body before writing the status so an encode failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("failed to encode response")
		buf.Reset()
		status = apperr.Internal.Status
		_ = json.NewEncoder(&buf).Encode(errorBody{Error: apperr.Internal.Message})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to write response")
	}
}
