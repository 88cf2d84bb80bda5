// Package apiclient implementa el cliente HTTP hacia el backend de inventario.
//
// Es el único punto que habla con la red: adjunta el Bearer token a las rutas /api/,
// traduce los cuerpos de error y, ante un 401, dispara el manejador global de
// fallo de autenticación (limpia credenciales y redirige al login).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

const (
	// AuthenticatedPrefix rutas que reciben el Bearer token.
	AuthenticatedPrefix = "/api/"

	maxResponseBytes = 4 << 20 // 4 MB
)

// TokenSource devuelve el token persistido en el momento de la llamada ("" si no hay sesión).
type TokenSource func() string

// AuthFailureHandler reacción global ante un 401. Se registra una sola vez.
type AuthFailureHandler interface {
	HandleAuthFailure()
}

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Message string // campo "message" del cuerpo de error (puede ser vacío)
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apiclient: %s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("apiclient: %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

// Unwrap permite errors.Is(err, domain.ErrUnauthorized) para los 401.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return nil
}

// MessageOf devuelve el mensaje legible del backend o fallback si no lo hay.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// Client cliente JSON hacia el backend.
// Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	metrics    *Metrics

	mu            sync.RWMutex
	onAuthFailure AuthFailureHandler
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics registra métricas de cada llamada.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New construye el cliente. timeout es sólo de red; no hay reintentos.
func New(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = func() string { return "" }
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthFailureHandler registra el manejador global de 401.
// Se registra después de construir el cliente porque la sesión depende del servicio de auth.
func (c *Client) SetAuthFailureHandler(h AuthFailureHandler) {
	c.mu.Lock()
	c.onAuthFailure = h
	c.mu.Unlock()
}

// Get, Post, Put y Delete atajos sobre Do.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do envía la petición y decodifica la respuesta JSON en out (si out != nil y hay cuerpo).
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: serializar request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	authenticated := strings.HasPrefix(path, AuthenticatedPrefix)
	if authenticated {
		if token := c.tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, path, 0, time.Since(start))
		if ctx.Err() != nil {
			return fmt.Errorf("apiclient: %s %s: timeout o cancelación: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("apiclient: %s %s: llamada HTTP fallida: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.metrics.observe(method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: leer respuesta: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Method: method, Path: path}
		var errBody dto.APIErrorBody
		if jsonErr := json.Unmarshal(raw, &errBody); jsonErr == nil {
			apiErr.Message = errBody.Message
		}
		// El login rechazado también responde 401, pero no es un fallo de sesión.
		if resp.StatusCode == http.StatusUnauthorized && authenticated {
			c.metrics.authFailure()
			c.handleAuthFailure()
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: %s %s: deserializar respuesta: %w", method, path, err)
	}
	return nil
}

func (c *Client) handleAuthFailure() {
	c.mu.RLock()
	h := c.onAuthFailure
	c.mu.RUnlock()
	if h != nil {
		h.HandleAuthFailure()
	}
}
