package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/apiclient"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/backend"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/credstore"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

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
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando dashboard")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	creds := credstore.NewFileStore(cfg.Session.File)
	feed := notify.NewFeed(0, log)

	// El token se lee del store en cada llamada: tras un 401 ya no se adjunta.
	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout(), func() string {
		c, err := creds.Load()
		if err != nil {
			return ""
		}
		return c.Token
	}, apiclient.WithMetrics(apiclient.NewMetrics(registry)))

	authSvc := backend.NewAuthService(client, feed, log)
	productSvc := backend.NewProductService(client, feed, log)
	movementSvc := backend.NewMovementService(client, feed, log)
	userSvc := backend.NewUserService(client, feed, log)
	reportSvc := backend.NewReportService(client, feed, log)

	sessions := auth.NewSessionStore(authSvc, creds, feed, feed, log)
	client.SetAuthFailureHandler(sessions)

	data := inventory.NewSyncStore(productSvc, movementSvc, userSvc, reportSvc, log)
	loadInBackground := func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.Timeout())
			defer cancel()
			_ = data.Load(ctx)
		}()
	}
	sessions.OnLogin(loadInBackground)
	sessions.OnLogout(data.Reset)

	sessions.Restore()
	if sessions.IsAuthenticated() {
		loadInBackground()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: 2 * cfg.API.Timeout(),
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Inventário Dashboard",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		Sessions: sessions,
		Data:     data,
		Feed:     feed,
		Reports:  infrapdf.NewStockReportGenerator(cfg.App.Name),
		Gatherer: registry,
		Metrics:  httpRouter.NewRequestMetrics(registry),
		Logger:   log,
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

	log.Info().Msg("dashboard detenido")
}
