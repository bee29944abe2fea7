package app

import (
	"net/http"
	"registration/internal/app/deps"
	"registration/internal/app/services"
	"registration/internal/core/domain/logging"
	"registration/internal/http/handlers/health"
	activateuser "registration/internal/http/handlers/users/activate_user"
	createuser "registration/internal/http/handlers/users/create_user"
	"registration/internal/http/middleware"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	AllowedOrigins []string
	IsTestMode     bool
}

func NewRouter(log logging.Logger, s *services.Services, db health.Pinger, opts RouterOptions) http.Handler {
	usersRouter := chi.NewRouter()
	usersRouter.Method(http.MethodPost, "/", createuser.New(log, s.SignUpWithEmail, opts.IsTestMode))
	usersRouter.Method(http.MethodPost, "/activate", activateuser.New(log, s.ActivateUser))

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.LogRequests(log))
	router.Use(middleware.Recover(log))
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{createuser.TestActivationCodeHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodGet, "/healthz", health.New(log, db))
	router.Mount("/users", usersRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps.Logger, s, deps.DB, RouterOptions{
		AllowedOrigins: deps.Config.AllowedOrigins,
		IsTestMode:     deps.Config.IsTestMode,
	})

	return &http.Server{
		Handler: router,
		Addr:    deps.Config.Addr(),
	}
}
