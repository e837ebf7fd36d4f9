package httpadapter

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/small-engineer/recados-api/internal/usecase/recados"
)

type Server struct {
	svc *recados.Service
	log zerolog.Logger
}

func NewServer(svc *recados.Service, l zerolog.Logger) *Server {
	return &Server{
		svc: svc,
		log: l,
	}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{email}", s.handleGetUser).Methods(http.MethodGet)

	r.HandleFunc("/users/{email}/recados", s.handleCreateNote).Methods(http.MethodPost)
	r.HandleFunc("/users/{email}/recados", s.handleListNotes).Methods(http.MethodGet)
	r.HandleFunc("/users/{email}/recados/{id}", s.handleGetNote).Methods(http.MethodGet)
	r.HandleFunc("/users/{email}/recados/{id}", s.handleUpdateNote).Methods(http.MethodPut)
	r.HandleFunc("/users/{email}/recados/{id}", s.handleDeleteNote).Methods(http.MethodDelete)

	var h http.Handler = r
	h = cors()(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})(h)
	h = hlog.NewHandler(s.log)(h)
	return h
}

// cors lets any origin call the API with the four API methods and answers
// preflight requests itself.
func cors() func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, http.StatusOK, msgHealthy, empty)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	respondFail(w, http.StatusNotFound, msgRouteNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondFail(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
