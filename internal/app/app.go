package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/bud-backend/internal/adapter/cache/redis"
	"github.com/heartmarshall/bud-backend/internal/adapter/mailer"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/book"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/genre"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/readingsession"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/userbook"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/bud-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/bud-backend/internal/adapter/provider/googlebooks"
	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/config"
	authsvc "github.com/heartmarshall/bud-backend/internal/service/auth"
	"github.com/heartmarshall/bud-backend/internal/service/catalog"
	"github.com/heartmarshall/bud-backend/internal/service/reading"
	usersvc "github.com/heartmarshall/bud-backend/internal/service/user"
	"github.com/heartmarshall/bud-backend/internal/transport/dataloader"
	"github.com/heartmarshall/bud-backend/internal/transport/middleware"
	"github.com/heartmarshall/bud-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var (
		searchCache catalogCache
		cachePinger pinger
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer closeRedis(rdb, logger)

		sc := redis.NewSearchCache(rdb, cfg.GoogleBooks.CacheTTL, logger)
		searchCache, cachePinger = sc, sc
	} else {
		logger.Info("redis not configured, google books search cache disabled")
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	verificationRepo := verification.New(pool)
	authMethodRepo := authmethod.New(pool)
	bookRepo := book.New(pool)
	genreRepo := genre.New(pool)
	userBookRepo := userbook.New(pool)
	sessionRepo := readingsession.New(pool)

	// Providers.
	mail, err := mailer.New(cfg.Email, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	var oauth oauthVerifier
	if cfg.Auth.GoogleEnabled() {
		oauth = google.NewVerifier(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret, cfg.Auth.GoogleRedirectURI, logger)
	}

	volumes := googlebooks.NewProvider(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey, cfg.GoogleBooks.Timeout, logger)

	// Services.
	authService := authsvc.NewService(
		logger, userRepo, tokenRepo, verificationRepo, authMethodRepo, txm, oauth,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		mail, cfg.Auth, cfg.Email,
	)
	userService := usersvc.NewService(logger, userRepo)
	catalogService := catalog.NewService(logger, bookRepo, genreRepo, volumes, searchCache, txm, cfg.Catalog, cfg.GoogleBooks)
	readingService := reading.NewService(logger, bookRepo, dataloader.NewBooks(bookRepo), userBookRepo, sessionRepo, txm, cfg.Reading)

	// Transport.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Routes{
		Health:  rest.NewHealthHandler(pool, cachePinger, Version),
		Auth:    rest.NewAuthHandler(authService, userService, logger),
		Books:   rest.NewBookHandler(catalogService, logger),
		Reading: rest.NewReadingHandler(readingService, logger),
		Limiter: limiter,
		Limits:  cfg.RateLimit,
		Loaders: dataloader.Middleware(bookRepo),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func closeRedis(rdb *goredis.Client, logger *slog.Logger) {
	if err := rdb.Close(); err != nil {
		logger.Warn("close redis", slog.String("error", err.Error()))
	}
}
