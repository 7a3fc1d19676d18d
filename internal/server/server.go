package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  *storage.Store
	log    *slog.Logger
	whois  WhoIser
	router chi.Router
}

// New creates a new Server with all routes configured. A nil logger
// discards output.
func New(store *storage.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		store:  store,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale enables tailnet identity lookups for incoming requests.
// Without it every request is attributed to the local dev user.
func (s *Server) SetTailscale(w WhoIser) {
	s.whois = w
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.identity)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/me", s.handleMe)
		r.Get("/stats", s.handleStats)
		r.Get("/sets", s.handleQuerySets)
		r.Get("/bodyweight", s.handleQueryBodyweight)
		r.Get("/summary", s.handleTrainingSummary)
		r.Get("/records", s.handlePersonalRecords)
		r.Get("/relative-strength", s.handleRelativeStrength)

		r.Get("/exercises", s.handleSearchExercises)
		r.Get("/exercises/unknown", s.handleUnknownExercises)
		r.Get("/exercises/summary", s.handleExerciseSummaries)
		r.Get("/exercises/{name}", s.handleGetExercise)
		r.Get("/exercises/{name}/similar", s.handleSimilarExercises)
	})
}
