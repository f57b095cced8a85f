package server

import (
	"context"
	"net/http"
	"time"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"roombook/internal/handlers"
	"roombook/internal/handlers/auth"
	"roombook/internal/handlers/room"
	"roombook/internal/store"
)

type Server struct {
	Addr  string
	Rooms store.RoomStore
	Users store.UserStore
	Log   *logrus.Logger
}

func New(addr string, rooms store.RoomStore, users store.UserStore, log *logrus.Logger) *Server {
	return &Server{
		Addr:  addr,
		Rooms: rooms,
		Users: users,
		Log:   log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router mounts the full HTTP surface. Exposed separately from Run so tests
// can drive it through httptest.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/room", func(r chi.Router) {
			r.Get("/", HandlerFunc(&room.ListHandler{Store: s.Rooms}))
			r.Post("/", HandlerFunc(&room.CreateHandler{Store: s.Rooms}))
			r.Get("/{id}", HandlerFunc(&room.GetHandler{Store: s.Rooms}))
			r.Put("/{id}", HandlerFunc(&room.UpdateHandler{Store: s.Rooms}))
			r.Delete("/{id}", HandlerFunc(&room.DeleteHandler{Store: s.Rooms}))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", HandlerFunc(&auth.RegisterHandler{Store: s.Users}))
			r.Post("/login", HandlerFunc(&auth.LoginHandler{Store: s.Users}))
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.Log.Infof("server running on %s", s.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
