package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Solo un admin lo crea,
// modifica o elimina. Price nunca es negativo.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
