package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleDateFormat is the layout used when printing sale timestamps.
const SaleDateFormat = "2006-01-02 15:04:05"

// Sale is an immutable record of a registered sale. It references the sold
// product by title only; deleting the product later leaves the sale intact.
type Sale struct {
	ID           uuid.UUID
	Client       string
	ProductTitle string
	Quantity     int
	Date         time.Time
	Discount     decimal.Decimal
}
