// Package dependency provides dependency injection for the application.
package dependency

import (
	"os"

	"github.com/finbook/backend/config"
	"github.com/finbook/backend/internal/application/usecase/auth"
	"github.com/finbook/backend/internal/application/usecase/category"
	"github.com/finbook/backend/internal/application/usecase/expense"
	"github.com/finbook/backend/internal/application/usecase/income"
	"github.com/finbook/backend/internal/application/usecase/report"
	"github.com/finbook/backend/internal/application/usecase/salary"
	"github.com/finbook/backend/internal/application/usecase/user"
	"github.com/finbook/backend/internal/infra/filedb"
	"github.com/finbook/backend/internal/infra/server/router"
	"github.com/finbook/backend/internal/integration/adapters"
	"github.com/finbook/backend/internal/integration/entrypoint/controller"
	"github.com/finbook/backend/internal/integration/entrypoint/middleware"
	"github.com/finbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *filedb.Store
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) *Injector {
	store := filedb.NewStore(cfg.Storage.DataDir)

	// Create repositories
	userRepo := persistence.NewUserRepository(store)
	categoryRepo := persistence.NewCategoryRepository(store)
	incomeRepo := persistence.NewIncomeRepository(store)
	expenseRepo := persistence.NewExpenseRepository(store)
	salaryRepo := persistence.NewSalaryRepository(store)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo, passwordService)
	deleteAccountUseCase := user.NewDeleteAccountUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create salary use cases
	listSalariesUseCase := salary.NewListSalariesUseCase(salaryRepo)
	getSalaryUseCase := salary.NewGetSalaryUseCase(salaryRepo)
	upsertSalaryUseCase := salary.NewUpsertSalaryUseCase(salaryRepo)

	// Create report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(incomeRepo, expenseRepo, categoryRepo, salaryRepo)
	exportCSVUseCase := report.NewExportCSVUseCase(incomeRepo, expenseRepo, categoryRepo, salaryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		info, err := os.Stat(store.DataDir())
		return err == nil && info.IsDir()
	})
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(getProfileUseCase, updateProfileUseCase, deleteAccountUseCase)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	salaryController := controller.NewSalaryController(
		listSalariesUseCase,
		getSalaryUseCase,
		upsertSalaryUseCase,
	)
	reportController := controller.NewReportController(getSummaryUseCase, exportCSVUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Login.MaxAttempts, cfg.Login.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		incomeController,
		expenseController,
		salaryController,
		reportController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config: cfg,
		Store:  store,
		Router: r,
	}
}
