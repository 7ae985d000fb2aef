package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) UpdateQuantity(string, int64) error            { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)      { return r.products, r.err }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)           { return r.products, r.err }
func (r *fakeProductRepo) Delete(string) error                           { return nil }

type fakeAnalyticsRepo struct {
	counts    repository.MonthlyMovementCounts
	err       error
	gotStart  time.Time
	gotEnd    time.Time
}

func (r *fakeAnalyticsRepo) GetMovementCounts(ctx context.Context, start, end time.Time) (repository.MonthlyMovementCounts, error) {
	r.gotStart, r.gotEnd = start, end
	return r.counts, r.err
}

func producto(id string, price int64, qty, maxStock int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		Category: "Categoría 1",
		Price:    decimal.NewFromInt(price),
		Quantity: qty,
		MaxStock: maxStock,
	}
}

func TestGetSummary_AgregaProductosYMovimientosDelMes(t *testing.T) {
	productRepo := &fakeProductRepo{products: []*entity.Product{
		producto("a", 50, 3, 40),   // umbral 8 → stock bajo
		producto("b", 100, 15, 50), // ok
	}}
	analyticsRepo := &fakeAnalyticsRepo{counts: repository.MonthlyMovementCounts{Entries: 4, Exits: 2}}
	uc := analytics.NewDashboardUseCase(productRepo, analyticsRepo, 0.2)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromInt(1650)), "150 + 1500 = 1650, obtenido %s", summary.TotalValue)
	assert.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "a", summary.LowStock[0].ID)
	assert.Equal(t, 4, summary.MonthEntries)
	assert.Equal(t, 2, summary.MonthExits)
	assert.NotEmpty(t, summary.DateLabel)
}

func TestGetSummary_RangoConsultadoEsElMesCalendarioCompleto(t *testing.T) {
	productRepo := &fakeProductRepo{}
	analyticsRepo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(productRepo, analyticsRepo, 0.2)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	assert.True(t, analyticsRepo.gotStart.Equal(monthStart), "el rango arranca el día 1 a las 00:00")
	assert.Equal(t, now.Month(), analyticsRepo.gotEnd.Month(), "el fin del rango no se pasa al mes siguiente")
	assert.Equal(t, now.Year(), analyticsRepo.gotEnd.Year())
	assert.False(t, analyticsRepo.gotEnd.Before(endOfMonth),
		"rango consultado termina en %s, antes del fin de mes %s", analyticsRepo.gotEnd, endOfMonth)
}

func TestGetSummary_CubreMovimientosFuturosDelMismoMes(t *testing.T) {
	// La fecha de negocio la pone el cliente: un movimiento fechado al final
	// del mes en curso debe caer dentro del rango consultado.
	analyticsRepo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(&fakeProductRepo{}, analyticsRepo, 0.2)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	lastDay := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).
		AddDate(0, 1, -1) // último día del mes al mediodía
	assert.False(t, lastDay.Before(analyticsRepo.gotStart))
	assert.False(t, lastDay.After(analyticsRepo.gotEnd),
		"movimiento del %s fuera del rango [%s, %s]", lastDay, analyticsRepo.gotStart, analyticsRepo.gotEnd)
}

func TestGetSummary_InventarioVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeProductRepo{}, &fakeAnalyticsRepo{}, 0.2)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalProducts)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Empty(t, summary.LowStock)
}

func TestGetSummary_PropagaErrorDeProductos(t *testing.T) {
	productRepo := &fakeProductRepo{err: domain.ErrNotFound}
	uc := analytics.NewDashboardUseCase(productRepo, &fakeAnalyticsRepo{}, 0.2)

	_, err := uc.GetSummary(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSummary_PropagaErrorDeAnalytics(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{err: context.DeadlineExceeded}
	uc := analytics.NewDashboardUseCase(&fakeProductRepo{}, analyticsRepo, 0.2)

	_, err := uc.GetSummary(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetSummary_RatioConfigurableCambiaElUmbral(t *testing.T) {
	// Con ratio 0.5 el producto b (15 de 50) también es stock bajo
	productRepo := &fakeProductRepo{products: []*entity.Product{
		producto("a", 50, 3, 40),
		producto("b", 100, 15, 50),
	}}
	uc := analytics.NewDashboardUseCase(productRepo, &fakeAnalyticsRepo{}, 0.5)

	summary, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.LowStockCount)
}
