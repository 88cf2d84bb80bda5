// Package inventory es la capa de sincronización de datos del dashboard.
//
// Mantiene en memoria productos, movimientos y usuarios tal como los devolvió el backend.
// Toda mutación se delega al backend y, si éste la acepta, se recarga la colección
// afectada completa: el estado local nunca se parchea.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// SyncStore caché en memoria de las tres colecciones. Seguro para uso concurrente;
// las llamadas de red nunca se hacen con el lock tomado.
type SyncStore struct {
	products  ProductGateway
	movements MovementGateway
	users     UserGateway
	reports   StockReportGateway
	log       *logger.Logger

	mu           sync.RWMutex
	productList  []entity.Product
	movementList []entity.Movement
	userList     []entity.User
	loaded       bool   // terminó al menos un Load desde la construcción o el último Reset
	running      int    // Loads en curso
	epoch        uint64 // se incrementa en Reset; descarta recargas iniciadas antes
}

// NewSyncStore construye la capa con colecciones vacías y en estado de carga.
func NewSyncStore(products ProductGateway, movements MovementGateway, users UserGateway, reports StockReportGateway, log *logger.Logger) *SyncStore {
	if log == nil {
		log = logger.Nop()
	}
	return &SyncStore{
		products:     products,
		movements:    movements,
		users:        users,
		reports:      reports,
		log:          log.Named("sync"),
		productList:  []entity.Product{},
		movementList: []entity.Movement{},
		userList:     []entity.User{},
	}
}

// ── Carga y recarga ───────────────────────────────────────────────────────────

// Load recarga las tres colecciones en paralelo. Una colección que falla conserva su
// contenido anterior y no bloquea a las demás. El error combinado es sólo informativo.
func (s *SyncStore) Load(ctx context.Context) error {
	s.mu.Lock()
	s.running++
	epoch := s.epoch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running--
		// Un Reset durante la carga deja el store vacío: sigue sin cargar.
		if s.epoch == epoch {
			s.loaded = true
		}
		s.mu.Unlock()
	}()

	productsCh := make(chan error, 1)
	movementsCh := make(chan error, 1)
	usersCh := make(chan error, 1)

	go func() { productsCh <- s.RefreshProducts(ctx) }()
	go func() { movementsCh <- s.RefreshMovements(ctx) }()
	go func() { usersCh <- s.RefreshUsers(ctx) }()

	err := multierr.Combine(<-productsCh, <-movementsCh, <-usersCh)
	if err != nil {
		s.log.Warn().Err(err).Msg("carga inicial incompleta")
	} else {
		s.log.Info().Msg("carga inicial completa")
	}
	return err
}

// RefreshProducts pide productos y reporte de stock en paralelo; ambos deben responder.
func (s *SyncStore) RefreshProducts(ctx context.Context) error {
	epoch := s.currentEpoch()

	type productsResult struct {
		records []dto.ProductRecord
		ok      bool
	}
	type reportResult struct {
		items []dto.StockReportItem
		ok    bool
	}
	productsCh := make(chan productsResult, 1)
	reportCh := make(chan reportResult, 1)

	go func() {
		records, ok := s.products.List(ctx)
		productsCh <- productsResult{records, ok}
	}()
	go func() {
		items, ok := s.reports.Stock(ctx)
		reportCh <- reportResult{items, ok}
	}()

	products := <-productsCh
	report := <-reportCh
	if !products.ok || !report.ok {
		return s.refreshFailed("products")
	}

	joined := JoinStock(products.records, report.items)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.productList = joined
	s.log.Debug().Str("collection", "products").Int("count", len(joined)).Msg("colección recargada")
	return nil
}

func (s *SyncStore) RefreshMovements(ctx context.Context) error {
	epoch := s.currentEpoch()
	records, ok := s.movements.List(ctx)
	if !ok {
		return s.refreshFailed("movements")
	}
	list := make([]entity.Movement, 0, len(records))
	for _, rec := range records {
		list = append(list, MovementFromRecord(rec))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.movementList = list
	s.log.Debug().Str("collection", "movements").Int("count", len(list)).Msg("colección recargada")
	return nil
}

func (s *SyncStore) RefreshUsers(ctx context.Context) error {
	epoch := s.currentEpoch()
	records, ok := s.users.List(ctx)
	if !ok {
		return s.refreshFailed("users")
	}
	list := make([]entity.User, 0, len(records))
	for _, rec := range records {
		list = append(list, UserFromRecord(rec))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return nil
	}
	s.userList = list
	s.log.Debug().Str("collection", "users").Int("count", len(list)).Msg("colección recargada")
	return nil
}

// Reset vacía las colecciones (logout). Las recargas en vuelo se descartan.
func (s *SyncStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.productList = []entity.Product{}
	s.movementList = []entity.Movement{}
	s.userList = []entity.User{}
	s.loaded = false
}

func (s *SyncStore) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *SyncStore) refreshFailed(collection string) error {
	s.log.Warn().Str("collection", collection).Msg("recarga fallida; se conserva el contenido anterior")
	return fmt.Errorf("%s: %w", collection, domain.ErrRefreshFailed)
}

// ── Mutaciones ────────────────────────────────────────────────────────────────
// nil = aceptada y recargada; domain.ErrMutationFailed = rechazada por el backend (ya
// notificada); *ValidationError o sentinela de dominio = rechazada antes de la red.

func (s *SyncStore) AddProduct(ctx context.Context, in ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := check(in); err != nil {
		return err
	}
	req := dto.CreateProductRequest{Nome: in.Name, Descricao: in.Description, EstoqueMinimo: in.MinimumStock}
	if _, ok := s.products.Create(ctx, req); !ok {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshProducts(ctx)
	return nil
}

func (s *SyncStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "campo obligatorio"}
	}
	patch.Name = trimPtr(patch.Name)
	patch.Description = trimPtr(patch.Description)
	if err := check(patch); err != nil {
		return err
	}
	req := dto.UpdateProductRequest{Nome: patch.Name, Descricao: patch.Description, EstoqueMinimo: patch.MinimumStock}
	if _, ok := s.products.Update(ctx, id, req); !ok {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshProducts(ctx)
	return nil
}

// DeleteProduct desactivación lógica; el producto sigue en el historial.
func (s *SyncStore) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "campo obligatorio"}
	}
	if !s.products.Deactivate(ctx, id) {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshProducts(ctx)
	return nil
}

// AddMovement registra entrada o salida y recarga movimientos y productos (el stock cambia).
func (s *SyncStore) AddMovement(ctx context.Context, in MovementInput) error {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Note = strings.TrimSpace(in.Note)
	if err := check(in); err != nil {
		return err
	}
	// Sólo la salida necesita el stock en memoria; la entrada la valida el backend.
	if in.Type == entity.MovementExit {
		product, found := s.Product(in.ProductID)
		if !found {
			return fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
		}
		if in.Quantity > product.CurrentStock {
			return fmt.Errorf("salida de %d con %d disponibles: %w", in.Quantity, product.CurrentStock, domain.ErrInsufficientStock)
		}
	}

	req := dto.MovementRequest{ProductID: in.ProductID, Quantity: in.Quantity, Note: in.Note}
	var ok bool
	if in.Type == entity.MovementEntry {
		_, ok = s.movements.CreateEntry(ctx, req)
	} else {
		_, ok = s.movements.CreateExit(ctx, req)
	}
	if !ok {
		return domain.ErrMutationFailed
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); _ = s.RefreshMovements(ctx) }()
	go func() { defer wg.Done(); _ = s.RefreshProducts(ctx) }()
	wg.Wait()
	return nil
}

func (s *SyncStore) AddUser(ctx context.Context, in UserInput) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Setor = strings.TrimSpace(in.Setor)
	if in.Password == "" {
		in.Password = DefaultUserPassword
	}
	if in.Role == "" {
		in.Role = entity.RoleCollaborator
	}
	if err := check(in); err != nil {
		return err
	}
	req := dto.CreateUserRequest{Username: in.Username, Password: in.Password, Role: string(in.Role), Setor: in.Setor}
	if _, ok := s.users.Create(ctx, req); !ok {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshUsers(ctx)
	return nil
}

func (s *SyncStore) UpdateUser(ctx context.Context, id string, patch UserPatch) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "campo obligatorio"}
	}
	patch.Username = trimPtr(patch.Username)
	patch.Setor = trimPtr(patch.Setor)
	if err := check(patch); err != nil {
		return err
	}
	req := dto.UpdateUserRequest{Username: patch.Username, Password: patch.Password, Setor: patch.Setor}
	if patch.Role != nil {
		role := string(*patch.Role)
		req.Role = &role
	}
	if _, ok := s.users.Update(ctx, id, req); !ok {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshUsers(ctx)
	return nil
}

// DeleteUser elimina una cuenta. La cuenta "admin" y la de la sesión actual están
// protegidas sea cual sea el rol de quien lo pide.
func (s *SyncStore) DeleteUser(ctx context.Context, id string, actor *entity.Session) error {
	user, found := s.User(id)
	if !found {
		return fmt.Errorf("usuario %s: %w", id, domain.ErrNotFound)
	}
	if !Deletable(user, actor) {
		return fmt.Errorf("usuario %s: %w", user.Username, domain.ErrProtectedAccount)
	}
	if !s.users.Delete(ctx, id) {
		return domain.ErrMutationFailed
	}
	_ = s.RefreshUsers(ctx)
	return nil
}

// Deletable indica si la cuenta u puede eliminarse desde el dashboard.
func Deletable(u entity.User, actor *entity.Session) bool {
	return !strings.EqualFold(u.Username, entity.ProtectedUsername) && !actor.Owns(u)
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Products copia de la colección actual.
func (s *SyncStore) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product{}, s.productList...)
}

func (s *SyncStore) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Movement{}, s.movementList...)
}

func (s *SyncStore) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.User{}, s.userList...)
}

// IsLoading true hasta que termina el primer Load y mientras haya uno en curso.
func (s *SyncStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loaded || s.running > 0
}

func (s *SyncStore) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.productList {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *SyncStore) User(id string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.userList {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// ProductMovements movimientos del producto, del más reciente al más antiguo.
// Los empates conservan el orden del backend.
func (s *SyncStore) ProductMovements(productID string) []entity.Movement {
	s.mu.RLock()
	out := make([]entity.Movement, 0)
	for _, m := range s.movementList {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// SearchProducts filtra por nombre sin distinguir mayúsculas ni acentos. Término vacío: todos.
func (s *SyncStore) SearchProducts(term string) []entity.Product {
	needle := entity.Fold(term)
	all := s.Products()
	if needle == "" {
		return all
	}
	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(entity.Fold(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// LowStock consulta el endpoint de stock bajo del backend; el stock se toma de la colección en memoria.
func (s *SyncStore) LowStock(ctx context.Context) ([]entity.Product, error) {
	records, ok := s.products.LowStock(ctx)
	if !ok {
		return nil, fmt.Errorf("low-stock: %w", domain.ErrRefreshFailed)
	}

	s.mu.RLock()
	byID := make(map[string]entity.Product, len(s.productList))
	for _, p := range s.productList {
		byID[p.ID] = p
	}
	s.mu.RUnlock()

	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		p := ProductFromRecord(rec, nil)
		if known, found := byID[rec.ID]; found {
			p.CurrentStock = known.CurrentStock
			p.Status = known.Status
		}
		out = append(out, p)
	}
	return out, nil
}
