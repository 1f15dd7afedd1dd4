package routes

import (
	"library-api/internal/adapters/http/handlers"
	"library-api/internal/adapters/http/middleware"
	"library-api/internal/adapters/persistence/repositories"
	"library-api/internal/config"
	"library-api/internal/core/services"
	"library-api/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Services bundles the core services the HTTP layer calls into
type Services struct {
	Books *services.BookService
	Loans *services.LoanService
}

// NewServices wires repositories into the core services
func NewServices(db *gorm.DB) *Services {
	bookRepo := repositories.NewBookRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	return &Services{
		Books: services.NewBookService(bookRepo),
		Loans: services.NewLoanService(loanRepo),
	}
}

// Setup configures all routes for the application
func Setup(app *fiber.App, svc *Services, cfg *config.Config) {
	validator := validation.New()

	healthHandler := handlers.NewHealthHandler(cfg.AppMode, config.HealthCheck)
	bookHandler := handlers.NewBookHandler(svc.Books, svc.Loans, validator)
	loanHandler := handlers.NewLoanHandler(svc.Loans, svc.Books, validator)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api", middleware.NoCacheHeaders())
	setupAPIRoutes(api, bookHandler, loanHandler)
}

// setupAPIRoutes configures the catalog and loan routes
func setupAPIRoutes(router fiber.Router, bookHandler *handlers.BookHandler, loanHandler *handlers.LoanHandler) {
	books := router.Group("/books")
	books.Post("/", bookHandler.Create)
	books.Get("/", bookHandler.Find)
	books.Get("/:id", bookHandler.Get)
	books.Put("/:id", bookHandler.Update)
	books.Delete("/:id", bookHandler.Delete)
	books.Get("/:id/loans", bookHandler.Loans)

	loans := router.Group("/loans")
	loans.Post("/", loanHandler.Create)
	loans.Get("/", loanHandler.Find)
	loans.Get("/:id", loanHandler.Get)
}
