package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/yungbote/fundledger-backend/docs"
	"github.com/yungbote/fundledger-backend/internal/db"
	"github.com/yungbote/fundledger-backend/internal/handlers"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/middleware"
	"github.com/yungbote/fundledger-backend/internal/repos"
	"github.com/yungbote/fundledger-backend/internal/server"
	"github.com/yungbote/fundledger-backend/internal/services"
	"github.com/yungbote/fundledger-backend/internal/utils"
)

// @title Fund Ledger API
// @version 1.0
// @description REST API for tracking private-markets funds, investors, and investments.
// @BasePath /
func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up repos...")
	fundRepo := repos.NewFundRepo(theDB, log)
	investorRepo := repos.NewInvestorRepo(theDB, log)
	investmentRepo := repos.NewInvestmentRepo(theDB, log)

	// Services
	log.Info("Setting up services...")
	fundService := services.NewFundService(theDB, log, fundRepo)
	investorService := services.NewInvestorService(theDB, log, investorRepo)
	investmentService := services.NewInvestmentService(theDB, log, fundRepo, investorRepo, investmentRepo)
	analyticsService := services.NewAnalyticsService(theDB, log, fundRepo, investorRepo, investmentRepo)

	// Handlers
	log.Info("Setting up handlers...")
	fundHandler := handlers.NewFundHandler(log, fundService)
	investorHandler := handlers.NewInvestorHandler(log, investorService)
	investmentHandler := handlers.NewInvestmentHandler(log, investmentService)
	analyticsHandler := handlers.NewAnalyticsHandler(log, analyticsService)

	// Rate limiting
	var rateLimiter *middleware.RateLimiter
	if utils.GetEnvAsBool("RATE_LIMIT_ENABLED", true, log) {
		maxReqs := utils.GetEnvAsInt("RATE_LIMIT_MAX", 100, log)
		windowSeconds := utils.GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60, log)
		rateLimiter = middleware.NewRateLimiter(maxReqs, time.Duration(windowSeconds)*time.Second)
		defer rateLimiter.Stop()
	}

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		FundHandler:       fundHandler,
		InvestorHandler:   investorHandler,
		InvestmentHandler: investmentHandler,
		AnalyticsHandler:  analyticsHandler,
		RateLimiter:       rateLimiter,
		AllowOrigins:      strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ","),
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
