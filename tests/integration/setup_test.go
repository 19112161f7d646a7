package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thrashered1/SmartSaveAI/internal/events"
	"github.com/thrashered1/SmartSaveAI/internal/handlers"
	"github.com/thrashered1/SmartSaveAI/internal/logger"
	"github.com/thrashered1/SmartSaveAI/internal/middleware"
	"github.com/thrashered1/SmartSaveAI/internal/models"
	"github.com/thrashered1/SmartSaveAI/internal/services"
	"github.com/thrashered1/SmartSaveAI/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Budget{},
		&models.IncomeSource{},
		&models.Expense{},
		&models.Goal{},
		&models.Streak{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	auditService := services.NewAuditService(db)
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(db)
	streakService := services.NewStreakService(db, budgetService, expenseService)
	insightService := services.NewInsightService(budgetService, expenseService)
	adviceService := services.NewAdviceService(nil, "test-model", budgetService, expenseService)
	reportService := services.NewReportService(budgetService, expenseService)

	publisher := events.NopPublisher{}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService, publisher)
	goalHandler := handlers.NewGoalHandler(goalService, auditService, publisher)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	streakHandler := handlers.NewStreakHandler(streakService, auditService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONList parses the response body into a slice.
func parseJSONList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON list: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":"Test User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// createBudget sets up a budget for the month with a single salary source.
func (app *testApp) createBudget(t *testing.T, token string, month, year int, income int64) {
	t.Helper()
	body := fmt.Sprintf(`{"month":%d,"year":%d,"income_sources":[{"name":"Salary","amount":%d}]}`,
		month, year, income)
	rec := app.request("POST", "/api/v1/budgets", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
}

// createExpense records one expense and returns its ID.
func (app *testApp) createExpense(t *testing.T, token string, amount int64, category, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"amount":%d,"category":%q,"date":%q}`, amount, category, date)
	rec := app.request("POST", "/api/v1/expenses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create expense failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(string)
}
