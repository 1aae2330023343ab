package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yungbote/fundledger-backend/internal/handlers"
	"github.com/yungbote/fundledger-backend/internal/logger"
	"github.com/yungbote/fundledger-backend/internal/middleware"
	"github.com/yungbote/fundledger-backend/internal/validation"
)

type RouterConfig struct {
	Log               *logger.Logger
	FundHandler       *handlers.FundHandler
	InvestorHandler   *handlers.InvestorHandler
	InvestmentHandler *handlers.InvestmentHandler
	AnalyticsHandler  *handlers.AnalyticsHandler

	// RateLimiter may be nil (tests run without one).
	RateLimiter  *middleware.RateLimiter
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	validation.Register()

	router := gin.Default()

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.Use(middleware.ErrorHandler(cfg.Log))
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	router.GET("/health", handlers.HealthCheck)

	router.GET("/funds", cfg.FundHandler.List)
	router.POST("/funds", cfg.FundHandler.Create)
	router.PUT("/funds", cfg.FundHandler.Update)
	router.GET("/funds/:id", cfg.FundHandler.Get)

	router.GET("/investors", cfg.InvestorHandler.List)
	router.POST("/investors", cfg.InvestorHandler.Create)

	// Nested fund routes use :id as well; gin requires one wildcard name per
	// segment position, so the handlers read the fund id from "id".
	router.GET("/funds/:id/investments", cfg.InvestmentHandler.ListForFund)
	router.POST("/funds/:id/investments", cfg.InvestmentHandler.Create)
	router.GET("/funds/:id/analytics", cfg.AnalyticsHandler.FundAnalytics)

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
