// Package api serves the layout pipeline over HTTP.
//
// Routes:
//
//	GET    /health               liveness and build info
//	POST   /api/layouts          lay out the diagram in the body and store it
//	GET    /api/layouts/{id}     fetch a stored layout
//	DELETE /api/layouts/{id}     remove a stored layout
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/erdgraph/pkg/pipeline"
	"github.com/matzehuels/erdgraph/pkg/store"
)

// maxBodyBytes bounds the size of a posted diagram.
const maxBodyBytes = 4 << 20

// Server is the HTTP API server for erdgraph.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// NewServer creates and configures the HTTP server. A nil logger logs
// through log.Default().
func NewServer(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api/layouts", func(r chi.Router) {
		r.Post("/", s.handleCreateLayout)
		r.Get("/{id}", s.handleGetLayout)
		r.Delete("/{id}", s.handleDeleteLayout)
	})

	s.router = r
}
