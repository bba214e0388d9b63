package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/USveterandr/budgetwise-ai/config"
	"github.com/USveterandr/budgetwise-ai/internal/api"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
	"github.com/USveterandr/budgetwise-ai/pkg/logger"
	"github.com/google/uuid"
)

// @title BudgetWise API
// @version 1.0
// @description Personal finance backend with budgets, expense tracking and gamification.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, dataStore, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	initAdminUser(dataStore)

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser(s store.Store) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}

	ctx := context.Background()
	_, err := s.GetUserByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin user already exists.")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Fatalf("failed to check for admin user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := models.User{
		ID:               uuid.NewString(),
		Email:            adminEmail,
		Password:         string(hashedPassword),
		FullName:         "Administrator",
		SubscriptionPlan: models.PlanBusinessProElite,
		IsAdmin:          true,
		EmailConfirmed:   true,
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Println("Admin user created successfully!")
}
