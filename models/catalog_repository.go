package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateTitle is returned when adding a product whose title is already
// taken, compared case-insensitively.
var ErrDuplicateTitle = errors.New("product already exists")

// ErrOutOfStock is returned when a sale targets a product with zero stock.
var ErrOutOfStock = errors.New("no stock available")

// ErrInsufficientStock is returned when a sale asks for more units than are
// in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

var (
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidStock = errors.New("stock must be non-negative")
)

// ProductUpdate carries optional replacement values for an update.
// A nil field keeps the current value.
type ProductUpdate struct {
	Author   *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
}

// FieldIssue reports a supplied update value that was rejected. The rest of
// the update still applies.
type FieldIssue struct {
	Field  string
	Reason error
}

func (i FieldIssue) String() string {
	return fmt.Sprintf("%s: %v", i.Field, i.Reason)
}

// CatalogRepository holds the products in insertion order. Lookups are
// linear scans; catalogs are expected to stay in the tens of records.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// indexOf must be called with the lock held.
func (r *CatalogRepository) indexOf(title string) int {
	for i := range r.products {
		if strings.EqualFold(r.products[i].Title, title) {
			return i
		}
	}
	return -1
}

// Find returns the product whose title matches case-insensitively.
func (r *CatalogRepository) Find(title string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(title); i >= 0 {
		return r.products[i], nil
	}
	return Product{}, ErrProductNotFound
}

// Add appends a new product to the catalog.
func (r *CatalogRepository) Add(p Product) error {
	if !p.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if p.Stock < 0 {
		return ErrInvalidStock
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(p.Title) >= 0 {
		return ErrDuplicateTitle
	}
	r.products = append(r.products, p)
	return nil
}

// Update applies the supplied fields to the matching product. Invalid values
// are skipped and reported as issues while the remaining fields still apply.
func (r *CatalogRepository) Update(title string, upd ProductUpdate) ([]FieldIssue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(title)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	p := &r.products[i]
	var issues []FieldIssue
	if upd.Author != nil {
		p.Author = *upd.Author
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Price != nil {
		if upd.Price.IsPositive() {
			p.Price = *upd.Price
		} else {
			issues = append(issues, FieldIssue{Field: "price", Reason: ErrInvalidPrice})
		}
	}
	if upd.Stock != nil {
		if *upd.Stock >= 0 {
			p.Stock = *upd.Stock
		} else {
			issues = append(issues, FieldIssue{Field: "stock", Reason: ErrInvalidStock})
		}
	}
	return issues, nil
}

// Remove deletes the matching product. Past sales keep their title reference.
func (r *CatalogRepository) Remove(title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(title)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// List returns a copy of all products in insertion order.
func (r *CatalogRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// DecrementStock reserves qty units of the product. The check and the
// decrement happen in one critical section; sale registration relies on
// that when pairing the decrement with the ledger append.
func (r *CatalogRepository) DecrementStock(title string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(title)
	if i < 0 {
		return ErrProductNotFound
	}
	p := &r.products[i]
	if p.Stock == 0 {
		return ErrOutOfStock
	}
	if qty > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}
