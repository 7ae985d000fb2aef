package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// date es opcional; si se omite se usa la fecha actual del servidor.
type RegisterMovementRequest struct {
	ProductID string     `json:"product_id"`
	Type      string     `json:"type"` // entry | exit
	Quantity  int64      `json:"quantity"`
	Date      *time.Time `json:"date,omitempty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos (created_at descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
