package repository

import (
	"context"
	"time"
)

// MonthlyMovementCounts conteo de entradas y salidas de un período.
type MonthlyMovementCounts struct {
	Entries int
	Exits   int
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetMovementCounts cuenta entradas y salidas cuya fecha de negocio cae en
	// el rango [startDate, endDate]. Devuelve ceros si no hay movimientos.
	GetMovementCounts(
		ctx context.Context,
		startDate, endDate time.Time,
	) (MonthlyMovementCounts, error)
}
