// Command create-admin creates an administrator account or resets its
// password. The email must already be listed in ADMIN_EMAILS.
//
// Usage:
//
//	create-admin --email=owner@example.com --password=...
//
// The password may also be passed through ADMIN_PASSWORD to keep it out of
// shell history. Configuration is loaded the same way as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres"
	adminrepo "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres/admin"
	"github.com/heartmarshall/tourdesk-backend/internal/app"
	"github.com/heartmarshall/tourdesk-backend/internal/auth"
	"github.com/heartmarshall/tourdesk-backend/internal/config"
	authsvc "github.com/heartmarshall/tourdesk-backend/internal/service/auth"
)

func main() {
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "administrator password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-admin --email=owner@example.com --password=...")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, adminrepo.New(pool), jwtManager, cfg.Auth)

	admin, err := svc.EnsureAdmin(ctx, authsvc.BootstrapInput{Email: *email, Password: *password})
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("Administrator %q is ready (id %s).\n", admin.Email, admin.ID)
}
