package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es la existencia actual; se modifica únicamente vía movimientos.
// MaxStock es la capacidad máxima y define el umbral de stock bajo.
type Product struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal // precio unitario de venta
	Quantity  int64           // existencia actual, nunca negativa
	MaxStock  int64           // capacidad máxima, siempre > 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
