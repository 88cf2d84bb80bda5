package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// fakeBackend implementa los cuatro gateways en memoria y cuenta las llamadas.
type fakeBackend struct {
	mu sync.Mutex

	products  []dto.ProductRecord
	report    []dto.StockReportItem
	movements []dto.MovementRecord
	users     []dto.UserRecord

	failProducts, failReport, failMovements, failUsers bool
	failMutations                                      bool
	onUsersList                                        func() // se ejecuta dentro de users.List

	calls map[string]int
	last  map[string]any
}

func newFake() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}, last: map[string]any{}}
}

func (f *fakeBackend) hit(name string, arg any) {
	f.mu.Lock()
	f.calls[name]++
	f.last[name] = arg
	f.mu.Unlock()
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) mutations() int {
	return f.count("product.create") + f.count("product.update") + f.count("product.deactivate") +
		f.count("movement.entry") + f.count("movement.exit") +
		f.count("user.create") + f.count("user.update") + f.count("user.delete")
}

// ProductGateway

type productGW struct{ *fakeBackend }

func (g productGW) List(context.Context) ([]dto.ProductRecord, bool) {
	g.hit("product.list", nil)
	if g.failProducts {
		return nil, false
	}
	return append([]dto.ProductRecord{}, g.products...), true
}

func (g productGW) Create(_ context.Context, req dto.CreateProductRequest) (*dto.ProductRecord, bool) {
	g.hit("product.create", req)
	if g.failMutations {
		return nil, false
	}
	rec := dto.ProductRecord{ID: "new", Nome: req.Nome, EstoqueMinimo: decimal.NewFromInt(int64(req.EstoqueMinimo)), Active: true}
	g.mu.Lock()
	g.products = append(g.products, rec)
	g.mu.Unlock()
	return &rec, true
}

func (g productGW) Update(_ context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductRecord, bool) {
	g.hit("product.update", req)
	if g.failMutations {
		return nil, false
	}
	return &dto.ProductRecord{ID: id}, true
}

func (g productGW) Deactivate(_ context.Context, id string) bool {
	g.hit("product.deactivate", id)
	return !g.failMutations
}

func (g productGW) LowStock(context.Context) ([]dto.ProductRecord, bool) {
	g.hit("product.lowstock", nil)
	return []dto.ProductRecord{{ID: "p1", Nome: "Papel"}, {ID: "zz", Nome: "Desconhecido"}}, true
}

// StockReportGateway

type reportGW struct{ *fakeBackend }

func (g reportGW) Stock(context.Context) ([]dto.StockReportItem, bool) {
	g.hit("report.stock", nil)
	if g.failReport {
		return nil, false
	}
	return append([]dto.StockReportItem{}, g.report...), true
}

// MovementGateway

type movementGW struct{ *fakeBackend }

func (g movementGW) List(context.Context) ([]dto.MovementRecord, bool) {
	g.hit("movement.list", nil)
	if g.failMovements {
		return nil, false
	}
	return append([]dto.MovementRecord{}, g.movements...), true
}

func (g movementGW) CreateEntry(_ context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool) {
	g.hit("movement.entry", req)
	if g.failMutations {
		return nil, false
	}
	return &dto.MovementRecord{ID: "m-new"}, true
}

func (g movementGW) CreateExit(_ context.Context, req dto.MovementRequest) (*dto.MovementRecord, bool) {
	g.hit("movement.exit", req)
	if g.failMutations {
		return nil, false
	}
	return &dto.MovementRecord{ID: "m-new"}, true
}

// UserGateway

type userGW struct{ *fakeBackend }

func (g userGW) List(context.Context) ([]dto.UserRecord, bool) {
	g.hit("user.list", nil)
	if g.onUsersList != nil {
		g.onUsersList()
	}
	if g.failUsers {
		return nil, false
	}
	return append([]dto.UserRecord{}, g.users...), true
}

func (g userGW) Create(_ context.Context, req dto.CreateUserRequest) (*dto.UserRecord, bool) {
	g.hit("user.create", req)
	if g.failMutations {
		return nil, false
	}
	return &dto.UserRecord{ID: "u-new", Username: req.Username}, true
}

func (g userGW) Update(_ context.Context, id string, req dto.UpdateUserRequest) (*dto.UserRecord, bool) {
	g.hit("user.update", req)
	if g.failMutations {
		return nil, false
	}
	return &dto.UserRecord{ID: id}, true
}

func (g userGW) Delete(_ context.Context, id string) bool {
	g.hit("user.delete", id)
	return !g.failMutations
}

func seeded() *fakeBackend {
	f := newFake()
	f.products = []dto.ProductRecord{
		{ID: "p1", Nome: "Papel A4", EstoqueMinimo: decimal.NewFromInt(10), Active: true, CreatedAt: "2024-01-10T08:00:00"},
		{ID: "p2", Nome: "Caneta Azul", EstoqueMinimo: decimal.NewFromInt(20), Active: true, CreatedAt: "2024-01-11T08:00:00"},
		{ID: "p3", Nome: "Grampeador", EstoqueMinimo: decimal.NewFromInt(2), Active: true},
	}
	f.report = []dto.StockReportItem{
		{ProductID: "p1", CurrentStock: decimal.NewFromInt(5), Status: "CRITICAL"},
		{ProductID: "p2", CurrentStock: decimal.NewFromInt(25), Status: "NORMAL"},
	}
	f.movements = []dto.MovementRecord{
		{ID: "m1", ProductID: "p1", Tipo: "ENTRADA", Quantidade: decimal.NewFromInt(10), DataHora: "2024-03-01T10:00:00", NomeUsuario: "maria"},
		{ID: "m2", ProductID: "p2", Tipo: "SAIDA", Quantidade: decimal.NewFromInt(3), DataHora: "2024-03-02T10:00:00", NomeUsuario: "joana"},
		{ID: "m3", ProductID: "p1", Tipo: "SAIDA", Quantidade: decimal.NewFromInt(5), DataHora: "2024-03-05T10:00:00", NomeUsuario: "joana"},
		{ID: "m4", ProductID: "p1", Tipo: "saida", Quantidade: decimal.NewFromInt(1), DataHora: "2024-03-03T10:00:00"},
		{ID: "m5", ProductID: "p1", Tipo: "entry", Quantidade: decimal.NewFromInt(2), DataHora: "2024-03-03T10:00:00"},
	}
	f.users = []dto.UserRecord{
		{ID: "u1", Username: "admin", Role: "ADMIN", Setor: "TI"},
		{ID: "u2", Username: "joana", Role: "COLLABORATOR", Setor: "RH"},
		{ID: "u3", Username: "pedro", Role: "collaborator", Setor: "Compras"},
	}
	return f
}

func newStore(f *fakeBackend) *inventory.SyncStore {
	return inventory.NewSyncStore(productGW{f}, movementGW{f}, userGW{f}, reportGW{f}, nil)
}

func loaded(t *testing.T, f *fakeBackend) *inventory.SyncStore {
	t.Helper()
	s := newStore(f)
	require.NoError(t, s.Load(context.Background()))
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_EstadoDeCarga(t *testing.T) {
	s := newStore(seeded())
	assert.True(t, s.IsLoading(), "cargando desde la construcción")
	assert.Empty(t, s.Products())

	require.NoError(t, s.Load(context.Background()))
	assert.False(t, s.IsLoading())
	assert.Len(t, s.Products(), 3)
	assert.Len(t, s.Movements(), 5)
	assert.Len(t, s.Users(), 3)
}

func TestLoad_ResetDuranteLaCargaSigueCargando(t *testing.T) {
	f := seeded()
	s := newStore(f)
	f.onUsersList = s.Reset // p.ej. un 401 en plena carga inicial

	_ = s.Load(context.Background())

	assert.True(t, s.IsLoading(), "un store reseteado a mitad de carga no está cargado")
	assert.Empty(t, s.Users(), "la respuesta de la época anterior se descarta")

	f.onUsersList = nil
	require.NoError(t, s.Load(context.Background()))
	assert.False(t, s.IsLoading())
	assert.Len(t, s.Users(), 3)
}

func TestLoad_UnaColeccionFallidaNoBloqueaLasDemas(t *testing.T) {
	f := seeded()
	f.failUsers = true
	s := newStore(f)

	err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRefreshFailed))
	assert.False(t, s.IsLoading())
	assert.Len(t, s.Products(), 3)
	assert.Len(t, s.Movements(), 5)
	assert.Empty(t, s.Users())
}

func TestRefreshProducts_UneReporteYNormaliza(t *testing.T) {
	s := loaded(t, seeded())

	p1, ok := s.Product("p1")
	require.True(t, ok)
	assert.Equal(t, 5, p1.CurrentStock)
	assert.Equal(t, entity.StockCritical, p1.Status)
	assert.Equal(t, "Papel A4", p1.Name)
	assert.Equal(t, 2024, p1.CreatedAt.Year())

	p3, ok := s.Product("p3")
	require.True(t, ok)
	assert.Equal(t, 0, p3.CurrentStock, "sin fila en el reporte: stock 0")
	assert.Equal(t, entity.StockNormal, p3.Status, "sin fila en el reporte: normal")
}

func TestRefreshProducts_FallaElReporteConservaAnterior(t *testing.T) {
	f := seeded()
	s := loaded(t, f)

	f.failReport = true
	f.products = nil
	err := s.RefreshProducts(context.Background())

	assert.True(t, errors.Is(err, domain.ErrRefreshFailed))
	assert.Len(t, s.Products(), 3, "una recarga fallida no vacía la colección")
}

func TestNormalizacion_TiposDeMovimiento(t *testing.T) {
	s := loaded(t, seeded())
	types := map[string]entity.MovementType{}
	for _, m := range s.Movements() {
		types[m.ID] = m.Type
	}
	assert.Equal(t, entity.MovementEntry, types["m1"])
	assert.Equal(t, entity.MovementExit, types["m2"])
	assert.Equal(t, entity.MovementExit, types["m4"])
	assert.Equal(t, entity.MovementEntry, types["m5"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMovement_RecargaMovimientosYProductos(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	beforeMov, beforeProd, beforeReport := f.count("movement.list"), f.count("product.list"), f.count("report.stock")

	err := s.AddMovement(context.Background(), inventory.MovementInput{ProductID: "p2", Type: entity.MovementExit, Quantity: 4, Note: " uso "})
	require.NoError(t, err)

	assert.Equal(t, 1, f.count("movement.exit"))
	assert.Equal(t, dto.MovementRequest{ProductID: "p2", Quantity: 4, Note: "uso"}, f.last["movement.exit"])
	assert.Equal(t, beforeMov+1, f.count("movement.list"))
	assert.Equal(t, beforeProd+1, f.count("product.list"))
	assert.Equal(t, beforeReport+1, f.count("report.stock"))
}

func TestAddMovement_EntradaUsaEndpointDeEntrada(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	require.NoError(t, s.AddMovement(context.Background(), inventory.MovementInput{ProductID: "p3", Type: entity.MovementEntry, Quantity: 100}))
	assert.Equal(t, 1, f.count("movement.entry"))
	assert.Equal(t, 0, f.count("movement.exit"))
}

func TestAddMovement_SalidaMayorQueStockNoLlamaAlBackend(t *testing.T) {
	f := seeded()
	s := loaded(t, f)

	err := s.AddMovement(context.Background(), inventory.MovementInput{ProductID: "p1", Type: entity.MovementExit, Quantity: 10})

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 0, f.mutations(), "no debe haber llamada de transporte")
	p1, _ := s.Product("p1")
	assert.Equal(t, 5, p1.CurrentStock)
}

func TestAddMovement_Validaciones(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	ctx := context.Background()

	cases := []inventory.MovementInput{
		{ProductID: "", Type: entity.MovementEntry, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementEntry, Quantity: 0},
		{ProductID: "p1", Type: entity.MovementExit, Quantity: -3},
		{ProductID: "p1", Type: "ajuste", Quantity: 1},
	}
	for _, in := range cases {
		err := s.AddMovement(ctx, in)
		var verr *inventory.ValidationError
		assert.True(t, errors.As(err, &verr), "entrada %+v", in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}

	err := s.AddMovement(ctx, inventory.MovementInput{ProductID: "nope", Type: entity.MovementExit, Quantity: 1})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "sin stock conocido no se autoriza la salida")
	assert.Equal(t, 0, f.mutations())
}

func TestAddMovement_EntradaNoDependeDeLaColeccionLocal(t *testing.T) {
	f := seeded()
	f.failProducts = true // la carga de productos falló: colección vacía
	s := newStore(f)
	_ = s.Load(context.Background())
	require.Empty(t, s.Products())

	err := s.AddMovement(context.Background(), inventory.MovementInput{ProductID: "p1", Type: entity.MovementEntry, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, f.count("movement.entry"))
}

func TestMutacionFallida_ColeccionIntacta(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	f.failMutations = true
	listsBefore := f.count("product.list")

	err := s.AddProduct(context.Background(), inventory.ProductInput{Name: "Clips", MinimumStock: 5})

	assert.True(t, errors.Is(err, domain.ErrMutationFailed))
	assert.Len(t, s.Products(), 3)
	assert.Equal(t, listsBefore, f.count("product.list"), "sin recarga tras un fallo")
}

func TestAddProduct_RecargaTrasExito(t *testing.T) {
	f := seeded()
	s := loaded(t, f)

	require.NoError(t, s.AddProduct(context.Background(), inventory.ProductInput{Name: "  Clips ", Description: "caixa", MinimumStock: 5}))

	assert.Equal(t, dto.CreateProductRequest{Nome: "Clips", Descricao: "caixa", EstoqueMinimo: 5}, f.last["product.create"])
	p, ok := s.Product("new")
	require.True(t, ok, "el producto nuevo llega por la recarga")
	assert.Equal(t, "Clips", p.Name)
}

func TestAddProduct_NombreVacioNoLlamaAlBackend(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	err := s.AddProduct(context.Background(), inventory.ProductInput{Name: "   ", MinimumStock: 1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0, f.mutations())
}

func TestUpdateProduct_Parcial(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	minimo := 7

	require.NoError(t, s.UpdateProduct(context.Background(), "p1", inventory.ProductPatch{MinimumStock: &minimo}))
	req := f.last["product.update"].(dto.UpdateProductRequest)
	assert.Nil(t, req.Nome)
	require.NotNil(t, req.EstoqueMinimo)
	assert.Equal(t, 7, *req.EstoqueMinimo)

	empty := " "
	err := s.UpdateProduct(context.Background(), "p1", inventory.ProductPatch{Name: &empty})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestDeleteProduct_DesactivaYRecarga(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	before := f.count("product.list")
	require.NoError(t, s.DeleteProduct(context.Background(), "p2"))
	assert.Equal(t, "p2", f.last["product.deactivate"])
	assert.Equal(t, before+1, f.count("product.list"))
}

func TestAddUser_ValoresPorDefecto(t *testing.T) {
	f := seeded()
	s := loaded(t, f)

	require.NoError(t, s.AddUser(context.Background(), inventory.UserInput{Username: "lucas", Setor: "Almoxarifado"}))
	assert.Equal(t, dto.CreateUserRequest{
		Username: "lucas", Password: inventory.DefaultUserPassword, Role: "collaborator", Setor: "Almoxarifado",
	}, f.last["user.create"])

	err := s.AddUser(context.Background(), inventory.UserInput{Username: "lucas", Setor: " "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestUpdateUser_EnviaRol(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	role := entity.RoleAdmin
	require.NoError(t, s.UpdateUser(context.Background(), "u3", inventory.UserPatch{Role: &role}))
	req := f.last["user.update"].(dto.UpdateUserRequest)
	require.NotNil(t, req.Role)
	assert.Equal(t, "admin", *req.Role)
}

func TestDeleteUser_CuentaAdminProtegidaParaCualquierRol(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	actors := []*entity.Session{
		{ID: "s1", Username: "maria", Role: entity.RoleAdmin},
		{ID: "s2", Username: "joana", Role: entity.RoleCollaborator},
		nil,
	}
	for _, actor := range actors {
		err := s.DeleteUser(context.Background(), "u1", actor)
		assert.True(t, errors.Is(err, domain.ErrProtectedAccount))
	}
	assert.Equal(t, 0, f.count("user.delete"))
	assert.Len(t, s.Users(), 3)
}

func TestDeleteUser_PropiaCuentaProtegida(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	err := s.DeleteUser(context.Background(), "u2", &entity.Session{ID: "sess", Username: "joana", Role: entity.RoleAdmin})
	assert.True(t, errors.Is(err, domain.ErrProtectedAccount))
	assert.Equal(t, 0, f.count("user.delete"))
}

func TestDeleteUser_OtraCuentaSeElimina(t *testing.T) {
	f := seeded()
	s := loaded(t, f)
	before := f.count("user.list")
	require.NoError(t, s.DeleteUser(context.Background(), "u3", &entity.Session{ID: "sess", Username: "maria", Role: entity.RoleAdmin}))
	assert.Equal(t, 1, f.count("user.delete"))
	assert.Equal(t, before+1, f.count("user.list"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductMovements_FiltraYOrdenaDescendente(t *testing.T) {
	s := loaded(t, seeded())
	got := s.ProductMovements("p1")

	ids := make([]string, 0, len(got))
	for i, m := range got {
		ids = append(ids, m.ID)
		assert.Equal(t, "p1", m.ProductID)
		if i > 0 {
			assert.False(t, m.CreatedAt.After(got[i-1].CreatedAt))
		}
	}
	// m4 y m5 empatan: conservan el orden del backend.
	assert.Equal(t, []string{"m3", "m4", "m5", "m1"}, ids)
	assert.Empty(t, s.ProductMovements("inexistente"))
}

func TestSearchProducts(t *testing.T) {
	s := loaded(t, seeded())
	assert.Len(t, s.SearchProducts("caneta"), 1)
	assert.Len(t, s.SearchProducts("PAPEL"), 1)
	assert.Len(t, s.SearchProducts("grampeadór"), 1)
	assert.Len(t, s.SearchProducts(""), 3)
	assert.Empty(t, s.SearchProducts("tesoura"))
}

func TestLowStock_UneStockEnMemoria(t *testing.T) {
	s := loaded(t, seeded())
	list, err := s.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].CurrentStock)
	assert.Equal(t, entity.StockCritical, list[0].Status)
	assert.Equal(t, entity.StockNormal, list[1].Status)
}

func TestProducts_DevuelveCopia(t *testing.T) {
	s := loaded(t, seeded())
	list := s.Products()
	list[0].Name = "mutado"
	p, _ := s.Product(list[0].ID)
	assert.NotEqual(t, "mutado", p.Name)
}

func TestReset_VaciaYVuelveACargar(t *testing.T) {
	s := loaded(t, seeded())
	s.Reset()
	assert.Empty(t, s.Products())
	assert.Empty(t, s.Movements())
	assert.Empty(t, s.Users())
	assert.True(t, s.IsLoading())
}

func TestDeletable(t *testing.T) {
	me := &entity.Session{ID: "s", Username: "joana"}
	assert.False(t, inventory.Deletable(entity.User{ID: "u1", Username: "admin"}, me))
	assert.False(t, inventory.Deletable(entity.User{ID: "u2", Username: "joana"}, me))
	assert.True(t, inventory.Deletable(entity.User{ID: "u3", Username: "pedro"}, me))
}
