package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AbdelazizSaid250/membership-service/internal/config"
	"github.com/AbdelazizSaid250/membership-service/internal/logger"
	"github.com/AbdelazizSaid250/membership-service/internal/repository"
	"github.com/AbdelazizSaid250/membership-service/internal/repository/postgres"
	"github.com/AbdelazizSaid250/membership-service/internal/repository/redislock"
	"github.com/AbdelazizSaid250/membership-service/internal/transport/gql"
	httpTransport "github.com/AbdelazizSaid250/membership-service/internal/transport/http"
	"github.com/AbdelazizSaid250/membership-service/internal/transport/http/handler"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

const dbConnectTimeout = time.Minute

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("service stopped with error", zap.Error(err))
	}
	logg.Info("service exited")
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключаемся к базе данных
	pool, err := connectDB(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer pool.Close()

	logg.Info("successfully connected to database")

	// Применяем миграции
	if err := runMigrations(cfg.MigrationsPath, cfg.GetDSN()); err != nil {
		return err
	}

	logg.Info("migrations applied successfully")

	locker, closeLocker, err := newLocker(ctx, cfg, pool, logg)
	if err != nil {
		return err
	}
	defer closeLocker()

	// Инициализируем репозитории
	userRepo := postgres.NewUserRepository(pool)
	authUserRepo := postgres.NewAuthUserRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	txManager := postgres.NewTransactionManager(pool)

	// Инициализируем use cases
	userUseCase := usecase.NewUserUseCase(userRepo, txManager, locker, logg)
	authUserUseCase := usecase.NewAuthUserUseCase(authUserRepo, memberRepo, txManager, locker, logg)
	teamUseCase := usecase.NewTeamUseCase(teamRepo, txManager, locker, logg)
	memberUseCase := usecase.NewMemberUseCase(memberRepo, teamRepo, txManager, locker, logg)

	// REST
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		UserHandler:     handler.NewUserHandler(userUseCase, logg),
		AuthUserHandler: handler.NewAuthUserHandler(authUserUseCase, logg),
		TeamHandler:     handler.NewTeamHandler(teamUseCase, logg),
		MemberHandler:   handler.NewMemberHandler(memberUseCase, logg),
		HealthHandler:   handler.NewHealthHandler(pool, logg),
		AdminSecret:     cfg.AdminSecret,
		JSONLimit:       cfg.JSONLimit,
		Logger:          logg,
	})

	// GraphQL
	graphqlHandler := gql.NewHandler(gql.HandlerConfig{
		Resolver:    gql.NewResolver(authUserUseCase, memberUseCase),
		AdminSecret: cfg.AdminSecret,
		JSONLimit:   cfg.JSONLimit,
		Logger:      logg,
	})

	servers := []*http.Server{
		newServer(cfg.RESTAddr(), router),
		newServer(cfg.GraphQLAddr(), graphqlHandler),
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			logg.Info("starting HTTP server", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		logg.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// connectDB создает пул и ждет, пока база ответит на ping
func connectDB(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.DatabaseMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = dbConnectTimeout

	ping := func() error { return pool.Ping(ctx) }
	notify := func(err error, next time.Duration) {
		logg.Warn("database is not ready", zap.Error(err), zap.Duration("retry_in", next))
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// newLocker выбирает Redis, если задан REDIS_ADDR, иначе advisory lock Postgres
func newLocker(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logg *zap.Logger) (repository.Locker, func(), error) {
	if !cfg.UseRedisLock() {
		logg.Info("using postgres advisory locks")
		return postgres.NewAdvisoryLocker(pool, cfg.LockTTL), func() {}, nil
	}

	client, err := redislock.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	logg.Info("using redis locks", zap.String("addr", cfg.RedisAddr))
	closeFn := func() {
		if err := client.Close(); err != nil {
			logg.Warn("failed to close redis client", zap.Error(err))
		}
	}
	return redislock.New(client, cfg.LockTTL, cfg.LockTTL, logg), closeFn, nil
}

// Применяем миграции базы данных
func runMigrations(path, dsn string) error {
	m, err := migrate.New(path, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
