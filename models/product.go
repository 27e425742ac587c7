package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// The title is the unique identifier; title matching is case-insensitive.
type Product struct {
	Title    string
	Author   string
	Category string
	Price    decimal.Decimal
	Stock    int
}
