package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"tripplanner/internal/auth"
	"tripplanner/internal/config"
	"tripplanner/internal/db"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// Bootstraps the initial administrator account. A fresh deployment has no
// admin, so nothing could reach the /api/admin endpoints without this.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	email := model.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Trip{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == model.RoleAdmin {
			log.Printf("admin %s already exists", email)
			return
		}
		if err := users.UpdateRole(ctx, existing.ID, model.RoleAdmin); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("promoted %s to ADMIN", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		admin := &model.User{
			Email:    email,
			Name:     getEnv("ADMIN_NAME", "Admin"),
			Surname:  getEnv("ADMIN_SURNAME", "Admin"),
			Password: hash,
			Role:     model.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("created admin %s (id %d)", email, admin.ID)
	default:
		log.Fatalf("lookup admin: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
