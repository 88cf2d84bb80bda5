// Package auth mantiene la sesión del operador: restauración, login, logout y fallo de autenticación.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// SessionExpiredMessage aviso emitido cuando el backend rechaza el token.
const SessionExpiredMessage = "Sessão expirada. Faça login novamente."

// SessionStore única sesión del proceso. Seguro para uso concurrente.
type SessionStore struct {
	gateway   Gateway
	creds     ports.CredentialStore
	navigator ports.Navigator
	notify    ports.Notifier
	log       *logger.Logger
	now       func() time.Time

	mu       sync.RWMutex
	session  *entity.Session
	ready    bool
	onLogin  []func()
	onLogout []func()
}

// NewSessionStore construye el store. La sesión queda vacía y no lista hasta Restore.
func NewSessionStore(gateway Gateway, creds ports.CredentialStore, navigator ports.Navigator, notify ports.Notifier, log *logger.Logger) *SessionStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionStore{
		gateway:   gateway,
		creds:     creds,
		navigator: navigator,
		notify:    notify,
		log:       log.Named("session"),
		now:       time.Now,
	}
}

// OnLogin registra una función que se ejecuta tras cada login exitoso.
func (s *SessionStore) OnLogin(fn func()) {
	s.mu.Lock()
	s.onLogin = append(s.onLogin, fn)
	s.mu.Unlock()
}

// OnLogout registra una función que se ejecuta al cerrar la sesión (logout o 401).
func (s *SessionStore) OnLogout(fn func()) {
	s.mu.Lock()
	s.onLogout = append(s.onLogout, fn)
	s.mu.Unlock()
}

// Restore reconstruye la sesión desde las credenciales persistidas.
// Sólo restaura si están las tres entradas; siempre termina con Ready()=true.
func (s *SessionStore) Restore() {
	creds, err := s.creds.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.ready = true }()

	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudieron leer las credenciales persistidas")
		return
	}
	if !creds.Complete() {
		s.log.Debug().Msg("sin sesión persistida")
		return
	}
	var token *jwt.TokenInfo
	s.session, token = s.build(creds)
	s.log.Info().Str("username", creds.Username).Str("role", string(s.session.Role)).Msg("sesión restaurada")
	if token != nil && token.Expired(s.now()) {
		// El backend responderá 401 y el manejador global cerrará la sesión.
		s.log.Warn().Time("expires_at", s.session.ExpiresAt).Msg("el token restaurado ya venció")
	}
}

// Login autentica contra el backend. Si falla, la sesión anterior queda intacta.
func (s *SessionStore) Login(ctx context.Context, username, password string) bool {
	resp, ok := s.gateway.Login(ctx, dto.LoginRequest{Username: username, Password: password})
	if !ok {
		return false
	}
	if resp.Token == "" {
		s.log.Warn().Str("username", username).Msg("login sin token en la respuesta")
		return false
	}

	prior, priorErr := s.creds.Load()
	creds := ports.Credentials{Token: resp.Token, Role: resp.Role, Username: username}
	if err := s.creds.Save(creds); err != nil {
		s.log.Error().Err(err).Msg("no se pudieron persistir las credenciales")
		s.rollbackCredentials(prior, priorErr == nil && s.IsAuthenticated())
		return false
	}

	s.mu.Lock()
	s.session, _ = s.build(creds)
	s.ready = true
	hooks := append([]func(){}, s.onLogin...)
	s.mu.Unlock()

	s.log.Info().Str("username", username).Str("role", resp.Role).Msg("login exitoso")
	for _, fn := range hooks {
		fn()
	}
	return true
}

// rollbackCredentials deshace un guardado parcial. Con sesión previa vuelve a escribir su
// triple; sin ella deja el store vacío.
func (s *SessionStore) rollbackCredentials(prior ports.Credentials, keepPrior bool) {
	if keepPrior && prior.Complete() {
		if err := s.creds.Save(prior); err != nil {
			s.log.Error().Err(err).Msg("restaurar credenciales de la sesión anterior")
		}
		return
	}
	if err := s.creds.Clear(); err != nil {
		s.log.Error().Err(err).Msg("limpiar credenciales")
	}
}

// Logout borra credenciales y sesión. Sólo local: no llama al backend.
func (s *SessionStore) Logout() {
	s.end("logout")
}

// HandleAuthFailure manejador global del 401: cierra la sesión y fuerza la navegación al login.
func (s *SessionStore) HandleAuthFailure() {
	s.end("token rechazado por el backend")
	if s.notify != nil {
		s.notify.Error(SessionExpiredMessage)
	}
	if s.navigator != nil {
		s.navigator.RedirectToLogin()
	}
}

func (s *SessionStore) end(reason string) {
	if err := s.creds.Clear(); err != nil {
		s.log.Error().Err(err).Msg("limpiar credenciales")
	}

	s.mu.Lock()
	had := s.session != nil
	s.session = nil
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	if had {
		s.log.Info().Str("reason", reason).Msg("sesión cerrada")
	}
	for _, fn := range hooks {
		fn()
	}
}

// Current copia de la sesión actual; nil si no hay.
func (s *SessionStore) Current() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *SessionStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAdmin()
}

// Ready indica si la restauración inicial terminó.
func (s *SessionStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Token lee el token persistido en el momento de la llamada ("" si no hay).
func (s *SessionStore) Token() string {
	creds, err := s.creds.Load()
	if err != nil {
		return ""
	}
	return creds.Token
}

// build arma la sesión; el TokenInfo es nil si el token es opaco.
func (s *SessionStore) build(c ports.Credentials) (*entity.Session, *jwt.TokenInfo) {
	sess := &entity.Session{
		ID:        uuid.NewString(),
		Username:  c.Username,
		Role:      entity.NormalizeRole(c.Role),
		CreatedAt: s.now(),
	}
	info, err := jwt.Inspect(c.Token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token opaco; sin fecha de expiración")
		return sess, nil
	}
	sess.ExpiresAt = info.ExpiresAt
	return sess, &info
}
