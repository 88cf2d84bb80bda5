package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/notify"
)

func TestFeed_SinceDevuelveEnOrden(t *testing.T) {
	f := notify.NewFeed(10, nil)
	f.Success("Produto criado com sucesso!")
	f.Error("Erro ao carregar usuários")
	f.RedirectToLogin()

	items, last := f.Since(0)
	assert.EqualValues(t, 3, last)
	if assert.Len(t, items, 3) {
		assert.Equal(t, notify.KindSuccess, items[0].Kind)
		assert.Equal(t, notify.KindError, items[1].Kind)
		assert.Equal(t, notify.KindNavigate, items[2].Kind)
		assert.Equal(t, notify.LoginPath, items[2].Target)
	}

	items, _ = f.Since(2)
	assert.Len(t, items, 1)
}

func TestFeed_CapacidadAcotada(t *testing.T) {
	f := notify.NewFeed(3, nil)
	for i := 0; i < 5; i++ {
		f.Success("ok")
	}

	items, last := f.Since(0)
	assert.EqualValues(t, 5, last)
	if assert.Len(t, items, 3) {
		assert.EqualValues(t, 3, items[0].ID, "se descartan los más antiguos")
		assert.EqualValues(t, 5, items[2].ID)
	}
}
