// Command promote changes a user's role by email address. It is used to
// bootstrap the first catalog administrator.
//
// Usage:
//
//	promote --email=user@example.com [--role=SUPER_ADMIN]
//
// Reads the same configuration as the server (CONFIG_PATH, environment).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/bud-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bud-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(domain.RoleSuperAdmin), "role to assign (USER, MODERATOR, CLUB_ADMIN, SUPER_ADMIN)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=SUPER_ADMIN]")
		os.Exit(2)
	}

	r := domain.Role(strings.ToUpper(strings.TrimSpace(*role)))
	if !r.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	if err := run(strings.ToLower(strings.TrimSpace(*email)), r); err != nil {
		fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		os.Exit(1)
	}
}

func run(email string, role domain.Role) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	u, err := user.New(pool).SetRoleByEmail(ctx, email, role)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user with email %q", email)
	}
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	fmt.Printf("User %q is now %s.\n", u.Email, u.Role)
	return nil
}
