// Package reports computes read-only aggregates over the catalog and the
// sales ledger. All functions are pure: they take snapshots and mutate
// nothing.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/seldonlabs/bookstore/models"
)

// ProductFinder resolves a sale's title against the current catalog.
type ProductFinder interface {
	Find(title string) (models.Product, error)
}

// SellerTotal is the aggregated quantity sold for one product title.
type SellerTotal struct {
	Title    string
	Quantity int
}

// AuthorTotal is the aggregated quantity sold for one author.
type AuthorTotal struct {
	Author   string
	Quantity int
}

// IncomeReport holds gross and net revenue over all resolvable sales.
type IncomeReport struct {
	Gross decimal.Decimal
	Net   decimal.Decimal
}

// TopSellers aggregates quantities by product title and returns the n best
// sellers, descending. Equal totals keep first-registration order.
func TopSellers(sales []models.Sale, n int) []SellerTotal {
	if len(sales) == 0 || n <= 0 {
		return nil
	}
	index := make(map[string]int)
	var totals []SellerTotal
	for _, s := range sales {
		if i, ok := index[s.ProductTitle]; ok {
			totals[i].Quantity += s.Quantity
			continue
		}
		index[s.ProductTitle] = len(totals)
		totals = append(totals, SellerTotal{Title: s.ProductTitle, Quantity: s.Quantity})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Quantity > totals[j].Quantity
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// SalesByAuthor totals quantities per author in first-encounter order.
// Sales whose product no longer resolves are skipped: with the product gone
// there is no author to attribute the quantity to.
func SalesByAuthor(finder ProductFinder, sales []models.Sale) []AuthorTotal {
	index := make(map[string]int)
	var totals []AuthorTotal
	for _, s := range sales {
		p, err := finder.Find(s.ProductTitle)
		if err != nil {
			continue
		}
		if i, ok := index[p.Author]; ok {
			totals[i].Quantity += s.Quantity
			continue
		}
		index[p.Author] = len(totals)
		totals = append(totals, AuthorTotal{Author: p.Author, Quantity: s.Quantity})
	}
	return totals
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Income sums revenue over all sales whose product still resolves, at the
// product's current price. Gross ignores discounts; net applies each sale's
// discount. Sales referencing deleted products contribute zero to both.
func Income(finder ProductFinder, sales []models.Sale) IncomeReport {
	report := IncomeReport{Gross: decimal.Zero, Net: decimal.Zero}
	for _, s := range sales {
		p, err := finder.Find(s.ProductTitle)
		if err != nil {
			continue
		}
		line := p.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
		report.Gross = report.Gross.Add(line)
		report.Net = report.Net.Add(line.Mul(one.Sub(s.Discount.Div(hundred))))
	}
	return report
}
