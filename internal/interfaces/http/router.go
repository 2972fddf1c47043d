package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	"github.com/jhoicas/recaudo-api/pkg/logger"
	"github.com/jhoicas/recaudo-api/pkg/metrics"
)

// AppConfig opciones del servidor HTTP.
type AppConfig struct {
	Name        string
	BodyLimit   int    // bytes; 0 = default de fiber
	CORSOrigins string // "*" por defecto
	StaticDir   string // vacío = sin archivos estáticos
	SwaggerFile string // vacío o inexistente = sin /docs
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ReportUC   *usecase.ReportUseCase
	Seeder     Seeder
	DB         Pinger
	Metrics    *metrics.Metrics // opcional
	Logger     *logger.Logger
}

// NewApp construye la aplicación fiber con middlewares, rutas y estáticos.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
		deps.Logger = log
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(log),
	})

	app.Use(RequestID())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(RequestLogger(log.Named("http")))
	app.Use(recover.New())

	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Recaudo API",
			}))
		}
	}

	app.Get("/health", Health(cfg.Name, deps.DB))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	Router(app, deps)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Logger)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	reports.Get("/total_paid_by_customer", reportHandler.TotalPaidByCustomer)
	reports.Get("/total_paid_by_customer/pdf", reportHandler.TotalPaidByCustomerPDF)
	reports.Get("/pending_invoices", reportHandler.PendingInvoices)
	reports.Get("/pending_invoices/pdf", reportHandler.PendingInvoicesPDF)
	reports.Get("/transactions_by_platform/:platform", reportHandler.TransactionsByPlatform)

	if deps.Seeder != nil {
		api.Post("/seed", NewSeedHandler(deps.Seeder, deps.Logger).Run)
	}
}
