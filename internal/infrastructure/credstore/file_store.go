// Package credstore persiste localmente token, role y username de la sesión.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/jhoicas/Inventario-dashboard/internal/application/ports"
)

const (
	keyToken    = "token"
	keyRole     = "role"
	keyUsername = "username"
)

var _ ports.CredentialStore = (*FileStore)(nil)

// FileStore guarda las tres entradas en un archivo JSON (permisos 0600) vía Viper.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye el store. Sin extensión se asume .json (Viper deduce el formato de ella).
func NewFileStore(path string) *FileStore {
	if filepath.Ext(path) == "" {
		path += ".json"
	}
	return &FileStore{path: path}
}

// Path ruta efectiva del archivo.
func (s *FileStore) Path() string { return s.path }

// Load lee las entradas; un archivo inexistente equivale a no tener sesión.
func (s *FileStore) Load() (ports.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return ports.Credentials{}, nil
	}
	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		return ports.Credentials{}, fmt.Errorf("credstore: leer %s: %w", s.path, err)
	}
	return ports.Credentials{
		Token:    v.GetString(keyToken),
		Role:     v.GetString(keyRole),
		Username: v.GetString(keyUsername),
	}, nil
}

// Save sobrescribe las tres entradas.
func (s *FileStore) Save(c ports.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("credstore: crear directorio: %w", err)
	}
	v := viper.New()
	v.SetConfigPermissions(0o600)
	v.Set(keyToken, c.Token)
	v.Set(keyRole, c.Role)
	v.Set(keyUsername, c.Username)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("credstore: escribir %s: %w", s.path, err)
	}
	return nil
}

// Clear elimina el archivo: las tres entradas desaparecen juntas.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("credstore: borrar %s: %w", s.path, err)
	}
	return nil
}
