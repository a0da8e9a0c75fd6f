package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/handler"
	customMiddleware "github.com/AbdelazizSaid250/membership-service/internal/transport/http/middleware"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	UserHandler     *handler.UserHandler
	AuthUserHandler *handler.AuthUserHandler
	TeamHandler     *handler.TeamHandler
	MemberHandler   *handler.MemberHandler
	HealthHandler   *handler.HealthHandler
	AdminSecret     string
	JSONLimit       int64
	Logger          *zap.Logger
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(cfg.JSONLimit))

	admin := customMiddleware.AdminAuth(cfg.AdminSecret)

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)

	// Users
	r.Route("/users", func(r chi.Router) {
		r.Get("/", cfg.UserHandler.ListUsers)
		r.Post("/", cfg.UserHandler.CreateUser)
		r.Post("/bulk", cfg.UserHandler.CreateUsers)
		r.With(admin).Delete("/", cfg.UserHandler.DeleteAllUsers)
		r.Get("/{id}", cfg.UserHandler.GetUser)
		r.Delete("/{id}", cfg.UserHandler.DeleteUser)
	})

	// Auth users
	r.Route("/auth-users", func(r chi.Router) {
		r.Get("/", cfg.AuthUserHandler.ListAuthUsers)
		r.Post("/", cfg.AuthUserHandler.CreateAuthUser)
		r.Post("/bulk", cfg.AuthUserHandler.CreateAuthUsers)
		r.With(admin).Delete("/", cfg.AuthUserHandler.DeleteAllAuthUsers)
		r.Get("/{id}", cfg.AuthUserHandler.GetAuthUser)
		r.Delete("/{id}", cfg.AuthUserHandler.DeleteAuthUser)
	})

	// Teams
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", cfg.TeamHandler.ListTeams)
		r.Post("/", cfg.TeamHandler.CreateTeam)
		r.Post("/bulk", cfg.TeamHandler.CreateTeams)
		r.With(admin).Delete("/", cfg.TeamHandler.DeleteAllTeams)
		r.Get("/{id}", cfg.TeamHandler.GetTeam)
		r.Delete("/{id}", cfg.TeamHandler.DeleteTeam)

		r.Get("/{id}/members/emails", cfg.MemberHandler.MemberEmails)
		r.Get("/{id}/members/infos", cfg.MemberHandler.MemberInfos)
		r.Get("/{id}/members/names", cfg.MemberHandler.MemberNames)
	})

	// Members
	r.Route("/members", func(r chi.Router) {
		r.Get("/", cfg.MemberHandler.ListMembers)
		r.Post("/", cfg.MemberHandler.CreateMember)
		r.Post("/bulk", cfg.MemberHandler.CreateMembers)
		r.With(admin).Delete("/", cfg.MemberHandler.DeleteAllMembers)
		r.Get("/{id}", cfg.MemberHandler.GetMember)
		r.Delete("/{id}", cfg.MemberHandler.DeleteMember)
	})

	return r
}
