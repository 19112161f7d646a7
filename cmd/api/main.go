package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/thrashered1/SmartSaveAI/internal/config"
	"github.com/thrashered1/SmartSaveAI/internal/database"
	"github.com/thrashered1/SmartSaveAI/internal/events"
	"github.com/thrashered1/SmartSaveAI/internal/handlers"
	"github.com/thrashered1/SmartSaveAI/internal/logger"
	"github.com/thrashered1/SmartSaveAI/internal/middleware"
	"github.com/thrashered1/SmartSaveAI/internal/services"
	"github.com/thrashered1/SmartSaveAI/internal/validator"

	_ "github.com/thrashered1/SmartSaveAI/internal/docs" // swagger docs
)

// @title           SmartSaveAI API
// @version         1.0
// @description     Personal finance tracker: budgets, expenses, savings goals, insights and AI advice.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Event publishing is optional; without a broker URL events are
	// silently dropped.
	var publisher events.Publisher = events.NopPublisher{}
	if appConfig.AMQPURL != "" {
		client, err := events.NewClient(appConfig.AMQPURL)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		defer client.Close()
		publisher = client
	}

	// The advice model is optional too; without a key every advice
	// request gets the fallback line.
	var chatClient services.ChatCompleter
	if appConfig.OpenAIAPIKey != "" {
		chatClient = openai.NewClient(appConfig.OpenAIAPIKey)
	}

	// Services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	streakService := services.NewStreakService(db, budgetService, expenseService)
	insightService := services.NewInsightService(budgetService, expenseService)
	adviceService := services.NewAdviceService(chatClient, appConfig.OpenAIModel, budgetService, expenseService)
	reportService := services.NewReportService(budgetService, expenseService)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService, publisher)
	goalHandler := handlers.NewGoalHandler(goalService, auditService, publisher)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	streakHandler := handlers.NewStreakHandler(streakService, auditService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.Create)
	budgets.GET("/:month/:year", budgetHandler.Get)
	budgets.PUT("/:month/:year", budgetHandler.Update)
	budgets.POST("/:month/:year/income", budgetHandler.AddIncomeSource)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/:month/:year", expenseHandler.ListMonth)
	expenses.DELETE("/:id", expenseHandler.Delete)

	goals := protected.Group("/goals")
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.POST("/:id/add-money", goalHandler.AddMoney)
	goals.DELETE("/:id", goalHandler.Delete)

	insights := protected.Group("/insights")
	insights.GET("/summary/:month/:year", insightsHandler.Summary)
	insights.GET("/analytics/:month/:year", insightsHandler.Analytics)

	streaks := protected.Group("/streaks")
	streaks.GET("", streakHandler.Get)
	streaks.POST("/evaluate", streakHandler.Evaluate)

	protected.POST("/ai-advice", adviceHandler.Advise)
	protected.GET("/reports/:month/:year", reportHandler.Download)

	log.Infof("Starting SmartSaveAI backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
