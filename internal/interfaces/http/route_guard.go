package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Rutas fijas de navegación.
const (
	LoginPath      = "/login"
	DefaultLanding = "/products" // destino por defecto de un usuario autenticado
)

// Action resultado de evaluar la guarda.
type Action int

const (
	ActionRender Action = iota
	ActionWait
	ActionRedirect
)

// GuardState estado de la sesión relevante para la guarda.
type GuardState struct {
	Ready         bool
	Authenticated bool
	Admin         bool
}

// Decision acción a aplicar; Location sólo en ActionRedirect.
type Decision struct {
	Action   Action
	Location string
}

// Decide evalúa la navegación a target (path + query). Función pura.
//   - restauración pendiente → esperar
//   - sin sesión → login conservando el destino original
//   - no admin en ruta admin → landing por defecto
//   - resto → render
func Decide(state GuardState, target string, adminOnly bool) Decision {
	switch {
	case !state.Ready:
		return Decision{Action: ActionWait}
	case !state.Authenticated:
		return Decision{Action: ActionRedirect, Location: LoginPath + "?from=" + url.QueryEscape(target)}
	case adminOnly && !state.Admin:
		return Decision{Action: ActionRedirect, Location: DefaultLanding}
	default:
		return Decision{Action: ActionRender}
	}
}

// SessionState lo que la guarda necesita saber de la sesión.
type SessionState interface {
	Ready() bool
	IsAuthenticated() bool
	IsAdmin() bool
}

// RouteGuard middleware que aplica Decide a cada petición.
func RouteGuard(sessions SessionState, adminOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := GuardState{
			Ready:         sessions.Ready(),
			Authenticated: sessions.IsAuthenticated(),
			Admin:         sessions.IsAdmin(),
		}
		d := Decide(state, c.OriginalURL(), adminOnly)
		switch d.Action {
		case ActionWait:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "loading"})
		case ActionRedirect:
			return redirect(c, d.Location)
		}
		return c.Next()
	}
}

// redirect 302 con el destino también en el cuerpo para clientes JSON.
func redirect(c *fiber.Ctx, location string) error {
	c.Location(location)
	return c.Status(fiber.StatusFound).JSON(fiber.Map{"redirect": location})
}

// safeRedirect acepta sólo rutas locales; el login nunca es destino.
func safeRedirect(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return DefaultLanding
	}
	if from == LoginPath || strings.HasPrefix(from, LoginPath+"?") {
		return DefaultLanding
	}
	return from
}
