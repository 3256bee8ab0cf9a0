package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/api"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/api/handlers"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/repository"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/internal/service"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/auth"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/config"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/logger"
	"github.com/Mrguru2024/IncomeIntelligence-sub004/pkg/postgres"

	"go.uber.org/zap"
)

// @title Spending Guardrails API
// @version 1.0
// @description Spending guardrail and savings-challenge engine for gig workers

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting guardrails service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	limitRepo := repository.NewLimitRepository(db, appLogger)
	spendingRepo := repository.NewSpendingRepository(db, appLogger)
	reflectionRepo := repository.NewReflectionRepository(db, appLogger)
	challengeRepo := repository.NewChallengeRepository(db, appLogger)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	profileService := service.NewProfileService(userRepo, appLogger)
	limitService := service.NewLimitService(limitRepo, appLogger)
	guardrailService := service.NewGuardrailService(limitRepo, spendingRepo, appLogger)
	spendingService := service.NewSpendingService(spendingRepo, guardrailService, appLogger)
	reflectionService := service.NewReflectionService(reflectionRepo, appLogger)
	challengeFactory := service.NewChallengeFactory(nil)
	challengeService := service.NewChallengeService(challengeRepo, userRepo, challengeFactory, appLogger)
	gamificationService := service.NewGamificationService(challengeRepo, userRepo, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, appLogger),
		Profile:      handlers.NewProfileHandler(profileService, appLogger),
		Limit:        handlers.NewLimitHandler(limitService, appLogger),
		Spending:     handlers.NewSpendingHandler(spendingService, guardrailService, appLogger),
		Reflection:   handlers.NewReflectionHandler(reflectionService, appLogger),
		Challenge:    handlers.NewChallengeHandler(challengeService, appLogger),
		Gamification: handlers.NewGamificationHandler(gamificationService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
