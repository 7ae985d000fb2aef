package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntry = "entry" // entrada de mercancía
	MovementTypeExit  = "exit"  // salida de mercancía
)

// Movement representa un movimiento de inventario (entrada o salida).
// Los movimientos son append-only: una vez persistidos no se modifican.
// ProductName es una copia desnormalizada del nombre del producto al momento
// del movimiento; no se sincroniza con renombres posteriores.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        string    // entry | exit
	Quantity    int64     // siempre positiva; el signo lo da Type
	Date        time.Time // fecha del evento de negocio
	CreatedAt   time.Time // fecha de inserción, usada para ordenar
}
