package http

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/sellout-api/internal/application/analisis"
	"github.com/jhoicas/sellout-api/internal/application/analytics"
	"github.com/jhoicas/sellout-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalisisUC *analisis.AnalisisUseCase
	ResumenUC  *analytics.ResumenUseCase
	JWTSecret  string
	JWTIssuer  string
	Logger     *logger.Logger
	// Gatherer de /metrics; nil usa el registro por defecto de Prometheus.
	Gatherer prometheus.Gatherer
	// Roles con acceso a la API; vacío = cualquier token válido.
	Roles []string
	// SwaggerSpec documento OpenAPI servido en /docs; vacío = sin Swagger UI.
	SwaggerSpec []byte
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	// Operación (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger UI: http://localhost:<port>/docs, documento en /docs/swagger.json
	if len(deps.SwaggerSpec) > 0 {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "./docs/swagger.json",
			FileContent: deps.SwaggerSpec,
			Path:        "docs",
			Title:       "Sell-out API",
		}))
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := []fiber.Handler{AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)}
	if len(deps.Roles) > 0 {
		protected = append(protected, RequireRole(deps.Roles...))
	}
	api := app.Group("/api", protected...)

	// Promociones
	promos := api.Group("/promociones")
	promocionHandler := NewPromocionHandler(deps.AnalisisUC, log)
	promos.Post("/analisis", promocionHandler.Analizar)
	promos.Post("/analisis/narrativa", promocionHandler.Narrativa)
	promos.Post("/analisis/pdf", promocionHandler.PDF)

	// Ventas
	ventas := api.Group("/ventas")
	ventasHandler := NewVentasHandler(deps.ResumenUC, log)
	ventas.Get("/resumen", ventasHandler.GetResumen)
}
