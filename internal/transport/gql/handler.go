package gql

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/middleware"
)

type adminKey struct{}

// HandlerConfig содержит зависимости GraphQL сервера
type HandlerConfig struct {
	Resolver    *Resolver
	AdminSecret string
	JSONLimit   int64
	Logger      *zap.Logger
}

// NewSchema разбирает схему и связывает ее с resolver'ом
func NewSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, resolver)
}

// NewHandler создает роутер с единственным маршрутом POST /graphql
func NewHandler(cfg HandlerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestSize(cfg.JSONLimit))
	r.Use(adminContext(cfg.AdminSecret))

	r.Method(http.MethodPost, "/graphql", &relay.Handler{Schema: NewSchema(cfg.Resolver)})

	return r
}

// adminContext отмечает в контексте запросы с действующим токеном администратора.
// Без токена запрос проходит дальше, проверку делают мутации удаления.
func adminContext(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if ok {
				claims, err := middleware.ParseAdminToken(key, raw)
				if err == nil && claims.Role == middleware.RoleAdmin {
					r = r.WithContext(withAdmin(r.Context()))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func withAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey{}, true)
}

func isAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey{}).(bool)
	return admin
}
