package credstore

import (
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
)

var _ ports.CredentialStore = (*MemoryStore)(nil)

// MemoryStore store en memoria para tests y ejecuciones efímeras.
type MemoryStore struct {
	mu    sync.Mutex
	creds ports.Credentials
}

// NewMemoryStore construye el store con credenciales iniciales opcionales.
func NewMemoryStore(initial ports.Credentials) *MemoryStore {
	return &MemoryStore{creds: initial}
}

func (s *MemoryStore) Load() (ports.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds, nil
}

func (s *MemoryStore) Save(c ports.Credentials) error {
	s.mu.Lock()
	s.creds = c
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	s.creds = ports.Credentials{}
	s.mu.Unlock()
	return nil
}
