package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/recaudo-api/docs"
	"github.com/jhoicas/recaudo-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/recaudo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/recaudo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/recaudo-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/recaudo-api/internal/interfaces/http"
	"github.com/jhoicas/recaudo-api/pkg/config"
	"github.com/jhoicas/recaudo-api/pkg/logger"
	"github.com/jhoicas/recaudo-api/pkg/metrics"
)

// @title           Recaudo API
// @version         1.0
// @description     Clientes, facturas y pagos recibidos por plataformas de pago (Nequi, Daviplata).
// @BasePath        /
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
		Int("max_conns", cfg.DB.MaxConns).
		Int("max_queued", cfg.DB.MaxQueued).
		Msg("iniciando aplicación")

	// El pool es perezoso: la primera conexión se abre con la primera consulta.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de PostgreSQL")
	}
	db := postgres.NewDB(pool, postgres.DBOptions{
		MaxConns:     cfg.DB.MaxConns,
		MaxQueued:    cfg.DB.MaxQueued,
		QueryTimeout: cfg.DB.QueryTimeout,
	})
	defer db.Close()

	customerRepo := postgres.NewCustomerRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	customerUC := usecase.NewCustomerUseCase(customerRepo, usecase.NewValidator())
	reportUC := usecase.NewReportUseCase(reportRepo, infrapdf.NewMarotoReportGenerator(cfg.App.Name))
	seeder := seed.New(db, seed.Options{File: cfg.Seed.File, Encoding: cfg.Seed.Encoding}, log.Named("seed"))

	m := metrics.New("recaudo", cfg.App.Env)
	if err := m.RegisterPool(db.Stat); err != nil {
		log.Warn().Err(err).Msg("métricas del pool")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		BodyLimit:   cfg.HTTP.BodyLimit(),
		CORSOrigins: cfg.HTTP.CORSOrigins,
		StaticDir:   cfg.HTTP.StaticDir,
		SwaggerFile: cfg.HTTP.SwaggerFile,
	}, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ReportUC:   reportUC,
		Seeder:     seeder,
		DB:         db,
		Metrics:    m,
		Logger:     log,
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
