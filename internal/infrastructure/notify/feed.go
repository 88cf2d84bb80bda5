// Package notify implementa los avisos al operador (toasts) y la señal de navegación.
package notify

import (
	"sync"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Tipos de aviso.
const (
	KindSuccess  = "success"
	KindError    = "error"
	KindNavigate = "navigate"
)

// LoginPath destino de la navegación forzada.
const LoginPath = "/login"

const defaultCapacity = 50

var (
	_ ports.Notifier  = (*Feed)(nil)
	_ ports.Navigator = (*Feed)(nil)
)

// Notification un aviso. Los IDs crecen de forma monótona para permitir el sondeo incremental.
type Notification struct {
	ID        uint64
	Kind      string
	Message   string
	Target    string
	CreatedAt time.Time
}

// Feed buffer circular acotado de avisos; también los registra en el log.
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	lastID   uint64
	log      *logger.Logger
	now      func() time.Time
}

// NewFeed construye el feed. capacity <= 0 usa 50.
func NewFeed(capacity int, log *logger.Logger) *Feed {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Feed{capacity: capacity, log: log, now: time.Now}
}

// Success aviso de operación exitosa.
func (f *Feed) Success(message string) {
	f.push(KindSuccess, message, "")
	f.log.Info().Str("kind", KindSuccess).Msg(message)
}

// Error aviso de fallo.
func (f *Feed) Error(message string) {
	f.push(KindError, message, "")
	f.log.Warn().Str("kind", KindError).Msg(message)
}

// RedirectToLogin publica la navegación forzada al login.
func (f *Feed) RedirectToLogin() {
	f.push(KindNavigate, "", LoginPath)
	f.log.Info().Str("kind", KindNavigate).Str("target", LoginPath).Msg("navegación forzada")
}

// Since devuelve los avisos con ID > after (en orden) y el último ID emitido.
func (f *Feed) Since(after uint64) ([]Notification, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, 0, len(f.items))
	for _, n := range f.items {
		if n.ID > after {
			out = append(out, n)
		}
	}
	return out, f.lastID
}

func (f *Feed) push(kind, message, target string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastID++
	f.items = append(f.items, Notification{
		ID:        f.lastID,
		Kind:      kind,
		Message:   message,
		Target:    target,
		CreatedAt: f.now(),
	})
	if len(f.items) > f.capacity {
		f.items = append(f.items[:0], f.items[len(f.items)-f.capacity:]...)
	}
}
