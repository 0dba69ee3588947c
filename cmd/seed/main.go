// Command seed provisions the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Re-running it rotates the stored credentials. There is
// deliberately no registration endpoint, so this is the only way an admin
// comes into existence.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"book-catalog-backend/internal/config"
	"book-catalog-backend/internal/domains/admin"
	adminRepo "book-catalog-backend/internal/domains/admin/repository"
	"book-catalog-backend/internal/infrastructure/database"
	"book-catalog-backend/pkg/logger"
)

const bcryptCost = 12

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Fatal("❌ ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcryptCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	repo := adminRepo.NewPostgresRepository(db.Pool)
	record := &admin.Admin{
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
	}

	if err := repo.Create(ctx, record); err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}

	log.Printf("✅ Admin account ready: %s", cfg.Admin.Email)
}
