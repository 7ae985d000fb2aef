// seed carga un juego de datos de demostración: tres productos y sus
// movimientos iniciales, aplicados a través del motor de movimientos para que
// las existencias queden consistentes con el historial.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/ledger"
	"github.com/jhoicas/inventario-lite/internal/application/usecase"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-lite/pkg/config"
)

type demoProduct struct {
	name     string
	category string
	price    int64
	maxStock int64
	entry    int64 // entrada inicial aplicada vía movimiento
}

var demoProducts = []demoProduct{
	{name: "Producto A", category: "Categoría 1", price: 50, maxStock: 40, entry: 3},
	{name: "Producto B", category: "Categoría 2", price: 100, maxStock: 50, entry: 15},
	{name: "Producto C", category: "Categoría 1", price: 75, maxStock: 30, entry: 8},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	applyMovementUC := ledger.NewApplyMovementUseCase(txRunner, productRepo, movementRepo)

	for _, d := range demoProducts {
		created, err := productUC.Create(dto.CreateProductRequest{
			Name:     d.name,
			Category: d.category,
			Price:    decimal.NewFromInt(d.price),
			Quantity: 0,
			MaxStock: d.maxStock,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear %s: %v\n", d.name, err)
			os.Exit(1)
		}
		if _, err := applyMovementUC.ApplyMovement(ctx, ledger.MovementInput{
			ProductID: created.ID,
			Type:      entity.MovementTypeEntry,
			Quantity:  d.entry,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "entrada inicial %s: %v\n", d.name, err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s (existencia %d)\n", d.name, d.entry)
	}

	fmt.Println("Datos de demostración cargados.")
}
