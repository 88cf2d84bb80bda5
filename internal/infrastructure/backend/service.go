// Package backend implementa los servicios de transporte por recurso del backend de inventario.
//
// Cada operación devuelve un valor o un fallo definitivo (ok=false); el error concreto se
// traduce aquí a un aviso al operador y nunca sale del paquete.
package backend

import (
	"context"
	"net/url"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/apiclient"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Requester abstrae al cliente HTTP (apiclient.Client).
type Requester interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

var _ Requester = (*apiclient.Client)(nil)

// caller lógica común: ejecutar, avisar, registrar.
type caller struct {
	api    Requester
	notify ports.Notifier
	log    *logger.Logger
}

func newCaller(api Requester, notify ports.Notifier, log *logger.Logger, component string) caller {
	if log == nil {
		log = logger.Nop()
	}
	return caller{api: api, notify: notify, log: log.Named(component)}
}

// call devuelve true si el backend respondió 2xx. successMsg vacío no genera aviso.
func (c caller) call(ctx context.Context, method, path string, in, out any, successMsg, fallback string) bool {
	if err := c.api.Do(ctx, method, path, in, out); err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("llamada al backend fallida")
		if c.notify != nil {
			c.notify.Error(apiclient.MessageOf(err, fallback))
		}
		return false
	}
	if successMsg != "" && c.notify != nil {
		c.notify.Success(successMsg)
	}
	return true
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
