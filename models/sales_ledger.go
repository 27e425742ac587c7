package models

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidDiscount is returned when a discount falls outside [0,100].
var ErrInvalidDiscount = errors.New("discount must be between 0 and 100")

var maxDiscount = decimal.NewFromInt(100)

// Catalog is the slice of the catalog store that sale registration needs.
type Catalog interface {
	Find(title string) (Product, error)
	DecrementStock(title string, qty int) error
}

// SalesLedger is the append-only record of registered sales.
type SalesLedger struct {
	mu      sync.Mutex
	catalog Catalog
	sales   []Sale
	now     func() time.Time
}

func NewSalesLedger(catalog Catalog) *SalesLedger {
	return &SalesLedger{catalog: catalog, now: time.Now}
}

// Register records a sale for qty units of the titled product and decrements
// its stock. The two effects happen together or not at all: every check runs
// before the decrement, and the append cannot fail afterwards.
//
// The stored sale carries the product's canonical title casing, the
// registration timestamp, and a fresh ID.
func (l *SalesLedger) Register(client, title string, qty int, discount decimal.Decimal) (Sale, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	product, err := l.catalog.Find(title)
	if err != nil {
		return Sale{}, err
	}
	if product.Stock == 0 {
		return Sale{}, ErrOutOfStock
	}
	if qty > product.Stock {
		return Sale{}, ErrInsufficientStock
	}
	if discount.IsNegative() || discount.GreaterThan(maxDiscount) {
		return Sale{}, ErrInvalidDiscount
	}

	if err := l.catalog.DecrementStock(product.Title, qty); err != nil {
		return Sale{}, err
	}
	sale := Sale{
		ID:           uuid.New(),
		Client:       client,
		ProductTitle: product.Title,
		Quantity:     qty,
		Date:         l.now(),
		Discount:     discount,
	}
	l.sales = append(l.sales, sale)
	return sale, nil
}

// List returns a copy of all sales in registration order.
func (l *SalesLedger) List() []Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	return out
}
