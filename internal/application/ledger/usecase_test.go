package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/ledger"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// Sin concurrencia real en los tests: GetForUpdate se comporta como GetByID.
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(productID string, quantity int64) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.ListAll()
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0)
	for _, m := range r.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback sobre los mismos repos en memoria. Si el
// callback devuelve error, descarta los movimientos insertados (rollback).
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovementRepository, repository.ProductRepository) error) error {
	movsBefore := len(r.movRepo.movements)
	qtyBefore := make(map[string]int64, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		qtyBefore[id] = p.Quantity
	}

	if err := fn(r.movRepo, r.productRepo); err != nil {
		r.movRepo.movements = r.movRepo.movements[:movsBefore]
		for id, qty := range qtyBefore {
			if p, ok := r.productRepo.products[id]; ok {
				p.Quantity = qty
			}
		}
		return err
	}
	return nil
}

func newUseCase(products ...*entity.Product) (*ledger.ApplyMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	txRunner := &fakeTxRunner{movRepo: movRepo, productRepo: productRepo}
	return ledger.NewApplyMovementUseCase(txRunner, productRepo, movRepo), productRepo, movRepo
}

func productoA(qty int64) *entity.Product {
	return &entity.Product{
		ID:       "prod-a",
		Name:     "Producto A",
		Category: "Categoría 1",
		Price:    decimal.NewFromInt(50),
		Quantity: qty,
		MaxStock: 40,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaIncrementaExistencia(t *testing.T) {
	uc, productRepo, movRepo := newUseCase(productoA(3))

	mov, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      entity.MovementTypeEntry,
		Quantity:  10,
	})

	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.NotEmpty(t, mov.ID)
	assert.Equal(t, "prod-a", mov.ProductID)
	assert.Equal(t, "Producto A", mov.ProductName, "el nombre queda desnormalizado en el movimiento")
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, int64(10), mov.Quantity)
	assert.False(t, mov.Date.IsZero(), "fecha omitida → ahora")

	updated, _ := productRepo.GetByID("prod-a")
	assert.Equal(t, int64(13), updated.Quantity)
	assert.Len(t, movRepo.movements, 1)
}

func TestApplyMovement_SalidaDecrementaExistencia(t *testing.T) {
	uc, productRepo, _ := newUseCase(productoA(13))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      entity.MovementTypeExit,
		Quantity:  7,
	})

	require.NoError(t, err)
	updated, _ := productRepo.GetByID("prod-a")
	assert.Equal(t, int64(6), updated.Quantity)
}

func TestApplyMovement_SalidaHastaCeroEsValida(t *testing.T) {
	uc, productRepo, _ := newUseCase(productoA(5))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      entity.MovementTypeExit,
		Quantity:  5,
	})

	require.NoError(t, err)
	updated, _ := productRepo.GetByID("prod-a")
	assert.Equal(t, int64(0), updated.Quantity)
}

func TestApplyMovement_SalidaMayorQueExistenciaFalla(t *testing.T) {
	uc, productRepo, movRepo := newUseCase(productoA(5))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      entity.MovementTypeExit,
		Quantity:  6,
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada queda a medias: ni movimiento ni cambio de existencia
	updated, _ := productRepo.GetByID("prod-a")
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Empty(t, movRepo.movements)
}

func TestApplyMovement_CantidadCeroONegativaRechazada(t *testing.T) {
	for _, qty := range []int64{0, -1, -100} {
		uc, productRepo, movRepo := newUseCase(productoA(3))

		_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
			ProductID: "prod-a",
			Type:      entity.MovementTypeEntry,
			Quantity:  qty,
		})

		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", qty)
		updated, _ := productRepo.GetByID("prod-a")
		assert.Equal(t, int64(3), updated.Quantity)
		assert.Empty(t, movRepo.movements)
	}
}

func TestApplyMovement_TipoDesconocidoRechazado(t *testing.T) {
	uc, _, movRepo := newUseCase(productoA(3))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      "transfer",
		Quantity:  1,
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, movRepo.movements)
}

func TestApplyMovement_ProductoInexistenteEsNotFound(t *testing.T) {
	uc, _, movRepo := newUseCase(productoA(3))

	_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeEntry,
		Quantity:  1,
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movements)
}

func TestApplyMovement_RespetaFechaExplicita(t *testing.T) {
	uc, _, _ := newUseCase(productoA(3))
	date := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mov, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
		ProductID: "prod-a",
		Type:      entity.MovementTypeEntry,
		Quantity:  2,
		Date:      date,
	})

	require.NoError(t, err)
	assert.True(t, mov.Date.Equal(date))
}

func TestApplyMovement_SecuenciaDeMovimientosEsConsistente(t *testing.T) {
	// La existencia final es el resultado de aplicar los movimientos en orden
	uc, productRepo, movRepo := newUseCase(productoA(0))

	steps := []struct {
		tipo string
		qty  int64
	}{
		{entity.MovementTypeEntry, 15},
		{entity.MovementTypeExit, 4},
		{entity.MovementTypeEntry, 2},
		{entity.MovementTypeExit, 13},
	}
	for _, s := range steps {
		_, err := uc.ApplyMovement(context.Background(), ledger.MovementInput{
			ProductID: "prod-a",
			Type:      s.tipo,
			Quantity:  s.qty,
		})
		require.NoError(t, err)
	}

	updated, _ := productRepo.GetByID("prod-a")
	assert.Equal(t, int64(0), updated.Quantity)
	assert.Len(t, movRepo.movements, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByProduct_FiltraPorProducto(t *testing.T) {
	otro := &entity.Product{
		ID: "prod-b", Name: "Producto B", Category: "Categoría 2",
		Price: decimal.NewFromInt(100), Quantity: 15, MaxStock: 50,
	}
	uc, _, _ := newUseCase(productoA(10), otro)

	ctx := context.Background()
	_, err := uc.ApplyMovement(ctx, ledger.MovementInput{ProductID: "prod-a", Type: entity.MovementTypeEntry, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.ApplyMovement(ctx, ledger.MovementInput{ProductID: "prod-b", Type: entity.MovementTypeExit, Quantity: 2})
	require.NoError(t, err)

	list, err := uc.ListByProduct("prod-a", 50, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "prod-a", list.Items[0].ProductID)
}
