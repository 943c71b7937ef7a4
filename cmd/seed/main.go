// Command seed registers a local account through the real hashing path.
//
//	go run ./cmd/seed -email dev@example.com -password changeme
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-auth-backend/config"
	"github.com/oksasatya/go-auth-backend/internal/domain/entity"
	"github.com/oksasatya/go-auth-backend/internal/domain/repository"
	pginfra "github.com/oksasatya/go-auth-backend/internal/infrastructure/postgres"
	"github.com/oksasatya/go-auth-backend/pkg/helpers"
)

func main() {
	email := flag.String("email", "dev@example.com", "email for the seeded account")
	password := flag.String("password", "changeme", "password for the seeded account")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	repo := pginfra.NewUserRepository(pool)
	u := &entity.User{Email: *email, PasswordHash: hash, IsActive: true}
	if err := repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Printf("account %s already exists, nothing to do", *email)
			return
		}
		log.Fatalf("create user: %v", err)
	}
	log.Printf("seeded account %s with id %d", u.Email, u.ID)
}
