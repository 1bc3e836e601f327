package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/sellout-api/docs"
	"github.com/jhoicas/sellout-api/internal/application/analisis"
	"github.com/jhoicas/sellout-api/internal/application/analytics"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	infraai "github.com/jhoicas/sellout-api/internal/infrastructure/ai"
	"github.com/jhoicas/sellout-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/sellout-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sellout-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sellout-api/internal/interfaces/http"
	"github.com/jhoicas/sellout-api/pkg/config"
	"github.com/jhoicas/sellout-api/pkg/logger"
)

// @title                       Sell-out API
// @version                     1.0
// @description                 Análisis de impacto de promociones y resumen de sell-out por tenant.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	prometheus.MustRegister(postgres.NewPoolStatsCollector(pool))

	ventasRepo := postgres.NewVentasRepository(pool)

	deps := analisis.Deps{
		Ventas:     ventasRepo,
		Analizador: promociones.NuevoAnalizador(promociones.UmbralesPorDefecto()),
		CacheTTL:   cfg.Redis.TTL(),
		PDF:        infrapdf.NewMarotoReporte(cfg.App.Name),
		Logger:     log,
	}

	// Caché de resultados (opcional): sin Redis cada análisis se recalcula.
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr()).Msg("Redis no disponible, análisis sin caché")
		} else {
			defer rdb.Close()
			deps.Cache = cache.NewRedisCache(rdb)
			log.Info().Str("addr", cfg.Redis.Addr()).Dur("ttl", cfg.Redis.TTL()).Msg("caché de análisis en Redis")
		}
	}

	// Narrativa IA (opcional): sin API key el endpoint responde 503.
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := infraai.NewGeminiService(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("Gemini no disponible, narrativa deshabilitada")
		} else {
			defer gemini.Close()
			deps.LLM = gemini
		}
	}

	analisisUC := analisis.NewAnalisisUseCase(deps)
	resumenUC := analytics.NewResumenUseCase(ventasRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // narrativa IA y PDF
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Documento OpenAPI embebido en el binario (paquete docs), no depende del directorio de trabajo.
	openAPI, err := swag.ReadDoc()
	if err != nil {
		log.Fatal().Err(err).Msg("leer documento OpenAPI")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalisisUC:  analisisUC,
		ResumenUC:   resumenUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		Roles:       cfg.JWT.Roles,
		Logger:      log,
		SwaggerSpec: []byte(openAPI),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
