// Command cleanup-tokens deletes expired or revoked refresh tokens and
// expired email verification codes.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH, environment).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/bud-backend/internal/app"
	"github.com/heartmarshall/bud-backend/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup-tokens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	refresh, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete refresh tokens: %w", err)
	}
	codes, err := verification.New(pool).DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("delete verification codes: %w", err)
	}

	logger.Info("token cleanup finished",
		slog.Int("refresh_tokens", refresh),
		slog.Int("verification_codes", codes))
	return nil
}
