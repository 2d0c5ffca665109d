package router

import (
	"time"

	"pospenjualan/internal/access"
	"pospenjualan/internal/config"
	"pospenjualan/internal/handler"
	"pospenjualan/internal/middleware"
	"pospenjualan/internal/repository"
	"pospenjualan/internal/service"
	"pospenjualan/internal/session"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	timeout := time.Duration(cfg.SessionTimeoutMinutes) * time.Minute
	rotate := time.Duration(cfg.SessionRotateMinutes) * time.Minute
	sessions := session.NewStore(rdb, timeout, rotate)
	cookie := middleware.CookieConfig{
		Name:   cfg.SessionCookieName,
		MaxAge: int(timeout.Seconds()),
		Secure: cfg.Env == "production",
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	attemptRepo := repository.NewLoginAttemptRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, attemptRepo, sessions, cfg)
	userSvc := service.NewUserService(userRepo, cfg)
	customerSvc := service.NewCustomerService(customerRepo)
	itemSvc := service.NewItemService(itemRepo)
	saleSvc := service.NewSaleService(saleRepo, txnRepo, customerRepo)
	txnSvc := service.NewTransactionService(txnRepo, saleRepo, itemRepo)
	cartSvc := service.NewCartService(cartRepo, txnRepo, itemRepo, saleRepo)
	reportSvc := service.NewReportService(reportRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cookie)
	usersH := handler.NewUsersHandler(userSvc)
	profileH := handler.NewProfileHandler(userSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	txnsH := handler.NewTransactionsHandler(txnSvc)
	cartH := handler.NewCartHandler(cartSvc, saleSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	dashboardH := handler.NewDashboardHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)

	// Everything below requires a live session. Each group is gated with the
	// level the page table declares for it.
	auth := r.Group("/", middleware.SessionAuth(sessions, cookie))
	{
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authH.Me)
		auth.GET("/dashboard", middleware.RequireLevel(access.PageLevel("dashboard"), "/login"), dashboardH.Get)

		profile := auth.Group("/profile")
		{
			profile.GET("", profileH.Get)
			profile.PUT("", profileH.Update)
			profile.PUT("/password", profileH.ChangePassword)
		}

		sales := auth.Group("/sales", middleware.RequireLevel(access.PageLevel("sales"), "/dashboard"))
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/generate-do", salesH.GenerateDO)
			sales.GET("/status-options", salesH.StatusOptions)
			sales.GET("/customer-options", salesH.CustomerOptions)
			sales.GET("/:id", salesH.Get)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
			sales.GET("/:id/transactions", txnsH.ListBySale)
		}

		items := auth.Group("/items", middleware.RequireLevel(access.PageLevel("items"), "/dashboard"))
		{
			items.POST("", itemsH.Create)
			items.GET("", itemsH.List)
			items.GET("/options", itemsH.Options)
			items.GET("/:id", itemsH.Get)
			items.PUT("/:id", itemsH.Update)
			items.DELETE("/:id", itemsH.Delete)
		}

		customers := auth.Group("/customers", middleware.RequireLevel(access.PageLevel("customers"), "/dashboard"))
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		transactions := auth.Group("/transactions", middleware.RequireLevel(access.PageLevel("transactions"), "/dashboard"))
		{
			transactions.POST("", txnsH.Create)
			transactions.GET("", txnsH.List)
			transactions.GET("/:id", txnsH.Get)
			transactions.PUT("/:id", txnsH.Update)
			transactions.DELETE("/:id", txnsH.Delete)
		}

		// The cart rides on the sales page's level.
		cart := auth.Group("/cart", middleware.RequireLevel(access.PageLevel("sales"), "/dashboard"))
		{
			cart.GET("", cartH.List)
			cart.DELETE("", cartH.Clear)
			cart.POST("/lines", cartH.Add)
			cart.PUT("/lines/:id", cartH.Update)
			cart.DELETE("/lines/:id", cartH.Remove)
			cart.POST("/finalize", cartH.Finalize)
			cart.POST("/checkout", cartH.Checkout)
		}

		reports := auth.Group("/reports", middleware.RequireLevel(access.PageLevel("reports"), "/dashboard"))
		{
			reports.GET("/sales", reportsH.Sales)
			reports.GET("/transactions", reportsH.Transactions)
			reports.GET("/stock", reportsH.Stock)
			reports.GET("/customers", reportsH.Customers)
		}

		users := auth.Group("/users", middleware.RequireLevel(access.PageLevel("users"), "/dashboard"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/level-options", usersH.LevelOptions)
			users.GET("/:id", usersH.Get)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
