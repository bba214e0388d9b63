package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/USveterandr/budgetwise-ai/config"
	_ "github.com/USveterandr/budgetwise-ai/docs"
	"github.com/USveterandr/budgetwise-ai/internal/ai"
	adminUser "github.com/USveterandr/budgetwise-ai/internal/api/v1/admin/user"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/auth"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/budget"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/dashboard"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/expense"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/investment"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/payment"
	"github.com/USveterandr/budgetwise-ai/internal/api/v1/receipt"
	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/email"
	gameng "github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/middleware"
	paydriver "github.com/USveterandr/budgetwise-ai/internal/payment"
	"github.com/USveterandr/budgetwise-ai/internal/payment/stripe"
	"github.com/USveterandr/budgetwise-ai/internal/services"
	"github.com/USveterandr/budgetwise-ai/internal/store"
	mongostore "github.com/USveterandr/budgetwise-ai/internal/store/mongo"
	pgstore "github.com/USveterandr/budgetwise-ai/internal/store/postgres"
)

// buildStore connects the backend named in the config and returns it behind
// the store interface. The choice is made once here; nothing downstream
// inspects the backend again.
func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, err
		}
		s := pgstore.New(db)
		if err := s.Migrate(); err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMongo:
		db, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return mongostore.New(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func NewRouter() (*gin.Engine, store.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dataStore, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, nil, err
	}

	var mailer email.Mailer = email.Noop{}
	if cfg.SendGridAPIKey != "" {
		mailer = email.NewSendGrid(cfg.SendGridAPIKey, cfg.EmailFromAddress)
	}

	var parser ai.Parser
	if cfg.GeminiAPIKey != "" {
		parser = ai.NewGemini(cfg.GeminiAPIKey)
	}

	var driver paydriver.Driver = stripe.NewDriver(cfg.StripeSecretKey, cfg.StripeWebhookSecret,
		stripe.DefaultPriceIDs(cfg.StripePricePlus, cfg.StripePriceInvestor, cfg.StripePriceElite))

	engine := gameng.NewEngine(dataStore)
	userService := services.NewUserService(dataStore)
	authService := services.NewAuthService(dataStore, engine, mailer, cfg.AppBaseURL)
	expenseService := services.NewExpenseService(dataStore, engine)
	budgetService := services.NewBudgetService(dataStore)
	investmentService := services.NewInvestmentService(dataStore)
	gamificationService := services.NewGamificationService(dataStore, engine)
	dashboardService := services.NewDashboardService(dataStore)
	receiptService := services.NewReceiptService(dataStore, parser)
	paymentService := services.NewPaymentService(dataStore, driver, cfg.AppBaseURL)

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(userService)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, auth.NewHandler(authService), authRequired)

		paymentHandler := payment.NewHandler(paymentService)
		payment.RegisterWebhook(v1, paymentHandler)

		authorized := v1.Group("/")
		authorized.Use(authRequired)
		{
			expense.RegisterRoutes(authorized, expense.NewHandler(expenseService))
			budget.RegisterRoutes(authorized, budget.NewHandler(budgetService))
			investment.RegisterRoutes(authorized, investment.NewHandler(investmentService))
			gamification.RegisterRoutes(authorized, gamification.NewHandler(gamificationService))
			dashboard.RegisterRoutes(authorized, dashboard.NewHandler(dashboardService))
			receipt.RegisterRoutes(authorized, receipt.NewHandler(receiptService))
			payment.RegisterRoutes(authorized, paymentHandler)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(userService))
		{
			adminUser.RegisterRoutes(admin, adminUser.NewHandler(userService))
		}
	}

	return router, dataStore, nil
}
