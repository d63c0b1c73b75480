// Package webserver exposes the catalog, provider status, sync history
// and an on-demand sync trigger over HTTP.
package webserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modelsync-hq/modelsync/internal/logger"
)

// WebServer serves the HTTP API.
type WebServer struct {
	APIPort string
	server  *http.Server
	router  *chi.Mux
	log     logger.Logger
}

// NewWebServer creates a server listening on apiPort with all routes
// attached.
func NewWebServer(apiPort string, handler *Handler, log logger.Logger) *WebServer {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	ws := &WebServer{
		APIPort: apiPort,
		router:  r,
		log:     log,
	}
	ws.setupRoutes(handler)
	return ws
}

// Router returns the chi router, mainly so tests can serve it directly.
func (ws *WebServer) Router() *chi.Mux {
	return ws.router
}

func (ws *WebServer) setupRoutes(handler *Handler) {
	ws.router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	ws.router.Handle("/metrics", promhttp.Handler())

	ws.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/models", handler.ListModels)
		r.Get("/providers", handler.ListProviders)
		r.Get("/history", handler.ListHistory)
		r.Post("/sync", handler.TriggerSync)
	})
}

// Start launches the HTTP server in the background.
func (ws *WebServer) Start() error {
	ws.server = &http.Server{
		Addr:    ":" + ws.APIPort,
		Handler: ws.router,
	}

	go func() {
		if err := ws.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.log.Errorf("web server stopped: %v", err)
		}
	}()

	ws.log.Infof("web server listening on port %s", ws.APIPort)
	return nil
}

// Stop gracefully shuts down the server with a timeout.
func (ws *WebServer) Stop() error {
	if ws.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return ws.server.Shutdown(ctx)
}
