package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Sessions SessionService
	Data     *inventory.SyncStore
	Feed     NotificationSource
	Reports  StockReportRenderer
	Gatherer prometheus.Gatherer // nil: sin /metrics
	Metrics  *RequestMetrics     // nil: sin métricas de peticiones
	Logger   *logger.Logger
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestObserver(deps.Logger, deps.Metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Públicas
	authHandler := NewAuthHandler(deps.Sessions)
	app.Get("/login", authHandler.Status)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/notifications", NewNotificationHandler(deps.Feed).List)

	// Guardas: sesión y sesión admin
	authed := RouteGuard(deps.Sessions, false)
	admin := RouteGuard(deps.Sessions, true)

	app.Get("/session", authed, authHandler.Session)

	// Dashboard (admin)
	app.Get("/dashboard", admin, NewDashboardHandler(deps.Data).Summary)

	// Products: lectura para todos, mutaciones admin
	productHandler := NewProductHandler(deps.Data, deps.Sessions)
	app.Get("/products", authed, productHandler.List)
	app.Get("/products/low-stock", authed, productHandler.LowStock)
	app.Get("/products/:id/movements", authed, productHandler.Movements)
	app.Post("/products", admin, productHandler.Create)
	app.Put("/products/:id", admin, productHandler.Update)
	app.Delete("/products/:id", admin, productHandler.Delete)

	// Movements
	movementHandler := NewMovementHandler(deps.Data, deps.Sessions)
	app.Get("/movements", authed, movementHandler.List)
	app.Post("/movements", authed, movementHandler.Create)
	app.Get("/history", authed, movementHandler.History)

	// Users (admin)
	userHandler := NewUserHandler(deps.Data, deps.Sessions)
	users := app.Group("/users", admin)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Reports (admin)
	app.Get("/reports/stock.pdf", admin, NewReportHandler(deps.Data, deps.Reports, deps.Logger).StockPDF)
}
