package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetMovementCounts cuenta entradas y salidas cuya fecha de negocio cae en el
// rango [startDate, endDate]. COALESCE garantiza ceros si no hay movimientos.
func (r *AnalyticsRepo) GetMovementCounts(
	ctx context.Context,
	startDate, endDate time.Time,
) (repository.MonthlyMovementCounts, error) {
	query := `
		SELECT
			COALESCE(COUNT(*) FILTER (WHERE type = $1), 0) AS entries,
			COALESCE(COUNT(*) FILTER (WHERE type = $2), 0) AS exits
		FROM movements
		WHERE date >= $3 AND date <= $4`
	var counts repository.MonthlyMovementCounts
	err := r.q.QueryRow(ctx, query,
		entity.MovementTypeEntry, entity.MovementTypeExit, startDate, endDate,
	).Scan(&counts.Entries, &counts.Exits)
	if err != nil {
		return repository.MonthlyMovementCounts{}, fmt.Errorf("get movement counts: %w", err)
	}
	return counts, nil
}
