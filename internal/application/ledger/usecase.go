// Package ledger contiene el caso de uso que mantiene la existencia de cada
// producto consistente con su historial de movimientos.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// ApplyMovementUseCase aplica movimientos (entry/exit) de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type ApplyMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner, productRepo: productRepo, movRepo: movRepo}
}

// MovementInput entrada para aplicar un movimiento.
// Date en cero significa "ahora".
type MovementInput struct {
	ProductID string
	Type      string // entry | exit
	Quantity  int64
	Date      time.Time
}

// ApplyMovement valida la entrada, inicia una transacción, bloquea la fila del
// producto y aplica el delta: +Quantity para entry, -Quantity para exit.
// Inserta exactamente un movimiento y una actualización de existencia por
// llamada; el commit hace visibles ambos de forma atómica.
//
// Errores: ErrInvalidInput (tipo desconocido), ErrInvalidQuantity (cantidad
// no positiva), ErrNotFound (producto inexistente), ErrInsufficientStock
// (salida mayor que la existencia actual).
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// Verificación temprana de existencia: evita abrir transacción para un 404
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para evitar
		// lost updates entre escritores concurrentes
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		delta := input.Quantity
		if input.Type == entity.MovementTypeExit {
			delta = -delta
		}
		newQty := locked.Quantity + delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}

		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   locked.ID,
			ProductName: locked.Name,
			Type:        input.Type,
			Quantity:    input.Quantity,
			Date:        date,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(locked.ID, newQty); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *ApplyMovementUseCase) ApplyMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	input := MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	mov, err := uc.ApplyMovement(ctx, input)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos ordenados por created_at descendente.
func (uc *ApplyMovementUseCase) List(limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

// ListByProduct lista los movimientos históricos de un producto.
// Los movimientos sobreviven al borrado del producto: el historial no se retracta.
func (uc *ApplyMovementUseCase) ListByProduct(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}

func toMovementList(list []*entity.Movement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}
