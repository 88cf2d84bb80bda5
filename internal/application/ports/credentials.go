package ports

// Credentials las tres entradas persistidas de la sesión. Se restauran sólo si están las tres.
type Credentials struct {
	Token    string
	Role     string
	Username string
}

// Complete indica si las tres entradas están presentes.
func (c Credentials) Complete() bool {
	return c.Token != "" && c.Role != "" && c.Username != ""
}

// CredentialStore persistencia local de la sesión (sobrevive reinicios del proceso).
// Clear borra siempre las tres entradas juntas.
type CredentialStore interface {
	Load() (Credentials, error)
	Save(c Credentials) error
	Clear() error
}
