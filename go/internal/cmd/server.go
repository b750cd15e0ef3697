package main

import (
	"net/http"
	"time"

	"github.com/mcdev12/todolist/go/internal/config"
	"github.com/mcdev12/todolist/go/internal/route"
	"github.com/mcdev12/todolist/go/internal/store"
	"github.com/rs/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(cfg config.Config, db *store.Store, services *Services) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h2c.NewHandler(setupHandler(db, services), &http2.Server{}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

func setupHandler(db *store.Store, services *Services) http.Handler {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	registerServices(mux, db, services)

	// Add health check endpoint
	setupHealthCheck(mux)

	return withRequestLogging(c.Handler(mux))
}

func registerServices(mux *http.ServeMux, db *store.Store, services *Services) {
	dispatcher := route.NewDispatcher(db)

	// Register user routes
	dispatcher.Register(mux, services.Users.Routes()...)

	// Register todo routes
	dispatcher.Register(mux, services.Todos.Routes()...)
}

func withRequestLogging(next http.Handler) http.Handler {
	h := hlog.RequestIDHandler("req_id", "X-Request-Id")(next)
	h = hlog.RemoteAddrHandler("ip")(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	return hlog.NewHandler(log.Logger)(h)
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
