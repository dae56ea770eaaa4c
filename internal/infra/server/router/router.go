// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finbook/backend/internal/integration/entrypoint/controller"
	"github.com/finbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	incomeController   *controller.IncomeController
	expenseController  *controller.ExpenseController
	salaryController   *controller.SalaryController
	reportController   *controller.ReportController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	salaryController *controller.SalaryController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		categoryController: categoryController,
		incomeController:   incomeController,
		expenseController:  expenseController,
		salaryController:   salaryController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
		allowedOrigins:     allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", r.authController.Register)
		authRoutes.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		users := protected.Group("/users")
		{
			users.GET("/me", r.userController.Me)
			users.PATCH("/me", r.userController.Update)
			users.DELETE("/me", r.userController.Delete)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		incomes := protected.Group("/incomes")
		{
			incomes.GET("", r.incomeController.List)
			incomes.POST("", r.incomeController.Create)
			incomes.PUT("/:id", r.incomeController.Update)
			incomes.DELETE("/:id", r.incomeController.Delete)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		salaries := protected.Group("/salaries")
		{
			salaries.GET("", r.salaryController.List)
			salaries.PUT("", r.salaryController.Upsert)
			salaries.GET("/:year/:month", r.salaryController.Get)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.GET("/export.csv", r.reportController.ExportCSV)
		}
	}
}
