package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sharenotes/sharenotes-go/internal/middleware"
	"github.com/sharenotes/sharenotes-go/internal/service"
)

// Deps holds the services the HTTP layer dispatches to.
type Deps struct {
	Auth      *service.AuthService
	Notes     *service.NoteService
	Shares    *service.ShareService
	JWTSecret string
}

// NewRouter builds the API router. Everything except /health and the
// register/login endpoints requires a valid session token.
func NewRouter(deps Deps) http.Handler {
	authHandler := NewAuthHandler(deps.Auth)
	noteHandler := NewNoteHandler(deps.Notes)
	shareHandler := NewShareHandler(deps.Shares)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/register", authHandler.HandleRegister)
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.JWTSecret, deps.Auth))

		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Get("/notes", noteHandler.HandleList)
		r.Post("/notes", noteHandler.HandleCreate)
		r.Get("/notes/{id}", noteHandler.HandleGet)
		r.Put("/notes/{id}", noteHandler.HandleUpdate)
		r.Delete("/notes/{id}", noteHandler.HandleDelete)

		r.Get("/notes/share", shareHandler.HandleListShared)
		r.Post("/notes/share/{id}", shareHandler.HandleShare)
		r.Delete("/notes/share/{id}/{share_id}", shareHandler.HandleRevoke)
	})

	return r
}
