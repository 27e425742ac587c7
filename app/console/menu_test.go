package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seldonlabs/bookstore/models"
)

// runSession drives a whole scripted menu session and returns everything
// printed to the operator.
func runSession(t *testing.T, input string) (string, *models.CatalogRepository, *models.SalesLedger) {
	t.Helper()

	catalog := models.NewCatalogRepository()
	require.NoError(t, catalog.Add(models.Product{
		Title: "1984", Author: "George Orwell", Category: "Dystopian",
		Price: decimal.RequireFromString("12.50"), Stock: 8,
	}))
	require.NoError(t, catalog.Add(models.Product{
		Title: "Sapiens", Author: "Yuval Noah Harari", Category: "History",
		Price: decimal.RequireFromString("20.00"), Stock: 6,
	}))
	ledger := models.NewSalesLedger(catalog)

	out := &bytes.Buffer{}
	ctrl := NewController(catalog, ledger, strings.NewReader(input), out, Options{})
	require.NoError(t, ctrl.Run())
	return out.String(), catalog, ledger
}

func TestExit(t *testing.T) {
	out, _, _ := runSession(t, "5\n")
	assert.Contains(t, out, "--- Bookstore Management System ---")
	assert.Contains(t, out, "Goodbye!")
}

func TestExitOnClosedInput(t *testing.T) {
	out, _, _ := runSession(t, "")
	assert.Contains(t, out, "Goodbye!")
}

func TestInvalidOptionReprompts(t *testing.T) {
	out, _, _ := runSession(t, "9\n5\n")
	assert.Contains(t, out, "Invalid option. Please try again.")
	assert.Equal(t, 2, strings.Count(out, "--- Bookstore Management System ---"),
		"bad input re-prompts at the same level")
}

func TestAddAndListProducts(t *testing.T) {
	out, catalog, _ := runSession(t, "1\n1\nDune\nFrank Herbert\nSci-Fi\n9.99\n4\n4\n5\n5\n")

	assert.Contains(t, out, "Product added successfully.")
	assert.Contains(t, out, "Title: Dune, Author: Frank Herbert, Category: Sci-Fi, Price: $9.99, Stock: 4")

	p, err := catalog.Find("Dune")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Stock)
}

func TestAddDuplicateAbortsEarly(t *testing.T) {
	out, catalog, _ := runSession(t, "1\n1\n1984\n5\n5\n")

	assert.Contains(t, out, "Product already exists.")
	assert.NotContains(t, out, "Author: ", "the flow stops before asking further fields")
	assert.Len(t, catalog.List(), 2)
}

func TestDeleteProduct(t *testing.T) {
	out, catalog, _ := runSession(t, "1\n3\nSapiens\n5\n5\n")

	assert.Contains(t, out, "Product deleted.")
	_, err := catalog.Find("Sapiens")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestUpdateProductPartial(t *testing.T) {
	out, catalog, _ := runSession(t, "1\n2\n1984\nEric Blair\n\nabc\n\n5\n5\n")

	assert.Contains(t, out, "Leave field empty to keep current value.")
	assert.Contains(t, out, "Invalid price. Keeping previous value.")
	assert.Contains(t, out, "Product updated.")

	p, err := catalog.Find("1984")
	require.NoError(t, err)
	assert.Equal(t, "Eric Blair", p.Author)
	assert.Equal(t, "Dystopian", p.Category, "empty input keeps the prior value")
	assert.Equal(t, "12.50", p.Price.StringFixed(2), "invalid input keeps the prior price")
}

func TestUpdateProductValidPrice(t *testing.T) {
	_, catalog, _ := runSession(t, "1\n2\n1984\n\n\n13.25\n\n5\n5\n")

	p, err := catalog.Find("1984")
	require.NoError(t, err)
	assert.Equal(t, "13.25", p.Price.StringFixed(2))
}

func TestRegisterSaleAndList(t *testing.T) {
	out, catalog, ledger := runSession(t, "2\nAlice\n1984\n2\n10\n3\n5\n")

	assert.Contains(t, out, "Sale registered successfully.")
	assert.Contains(t, out, "Client: Alice, Product: 1984, Quantity: 2,")
	assert.Contains(t, out, "Discount: 10%")

	p, err := catalog.Find("1984")
	require.NoError(t, err)
	assert.Equal(t, 6, p.Stock)
	assert.Len(t, ledger.List(), 1)
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	out, catalog, ledger := runSession(t, "2\nBob\n1984\n99\n0\n5\n")

	assert.Contains(t, out, "Insufficient stock.")
	assert.Empty(t, ledger.List())
	p, err := catalog.Find("1984")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock, "a rejected sale leaves stock untouched")
}

func TestRegisterSaleUnknownProduct(t *testing.T) {
	out, _, ledger := runSession(t, "2\nBob\nMoby Dick\n5\n")

	assert.Contains(t, out, "Product not found.")
	assert.Empty(t, ledger.List())
}

func TestRegisterSaleInvalidDiscount(t *testing.T) {
	out, catalog, ledger := runSession(t, "2\nBob\n1984\n1\n150\n5\n")

	assert.Contains(t, out, "Discount must be between 0 and 100.")
	assert.Empty(t, ledger.List())
	p, err := catalog.Find("1984")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)
}

func TestSalesListEmpty(t *testing.T) {
	out, _, _ := runSession(t, "3\n5\n")
	assert.Contains(t, out, "No sales registered.")
}

func TestReports(t *testing.T) {
	script := strings.Join([]string{
		"2", "Alice", "1984", "3", "0", // sale: 3x 1984
		"2", "Bob", "Sapiens", "2", "50", // sale: 2x Sapiens, half off
		"4", "1", "2", "3", "4", // reports: top sellers, by author, income, back
		"5",
	}, "\n") + "\n"

	out, _, _ := runSession(t, script)

	assert.Contains(t, out, "--- Top 3 Best-Selling Products ---")
	assert.Contains(t, out, "1. 1984 - 3 sold")
	assert.Contains(t, out, "2. Sapiens - 2 sold")

	assert.Contains(t, out, "Author: George Orwell, Total sold: 3")
	assert.Contains(t, out, "Author: Yuval Noah Harari, Total sold: 2")

	// Gross 3*12.50 + 2*20.00 = 77.50; net applies 50% to the Sapiens line.
	assert.Contains(t, out, "Gross income (without discount): $77.50")
	assert.Contains(t, out, "Net income (with discount): $57.50")
}

func TestReportsEmptyLedger(t *testing.T) {
	out, _, _ := runSession(t, "4\n1\n2\n3\n4\n5\n")
	assert.Equal(t, 3, strings.Count(out, "No sales data available."))
}

func TestControllerOptionDefaults(t *testing.T) {
	catalog := models.NewCatalogRepository()
	ledger := models.NewSalesLedger(catalog)
	out := &bytes.Buffer{}

	ctrl := NewController(catalog, ledger, strings.NewReader("4\n4\n5\n"), out, Options{TopSellers: 5})
	require.NoError(t, ctrl.Run())
	assert.Contains(t, out.String(), "Top 5 best-selling products")
	assert.Equal(t, "$", ctrl.currency)
}
