package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/seldonlabs/bookstore/app/config"
	"github.com/seldonlabs/bookstore/app/console"
	"github.com/seldonlabs/bookstore/app/obs"
	"github.com/seldonlabs/bookstore/models"
)

func seedProducts() []models.Product {
	return []models.Product{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Novel", Price: decimal.RequireFromString("15.99"), Stock: 10},
		{Title: "1984", Author: "George Orwell", Category: "Dystopian", Price: decimal.RequireFromString("12.50"), Stock: 8},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Category: "Classic", Price: decimal.RequireFromString("14.00"), Stock: 5},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Category: "Fantasy", Price: decimal.RequireFromString("18.75"), Stock: 7},
		{Title: "Sapiens", Author: "Yuval Noah Harari", Category: "History", Price: decimal.RequireFromString("20.00"), Stock: 6},
	}
}

func main() {
	cfg := config.Load()
	log := obs.NewLogger(cfg.LogLevel)

	catalog := models.NewCatalogRepository()
	if cfg.Seed {
		for _, p := range seedProducts() {
			if err := catalog.Add(p); err != nil {
				log.Error("seeding catalog", "title", p.Title, "error", err)
			}
		}
	}
	ledger := models.NewSalesLedger(catalog)

	ctrl := console.NewController(catalog, ledger, os.Stdin, os.Stdout, console.Options{
		Currency:   cfg.Currency,
		TopSellers: cfg.TopSellers,
		Logger:     log,
	})

	log.Info("bookstore started", "seeded", cfg.Seed)
	if err := ctrl.Run(); err != nil {
		// Last-resort trap: nothing below is expected to fail this way.
		fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", err)
		os.Exit(1)
	}
	log.Info("bookstore stopped")
}
