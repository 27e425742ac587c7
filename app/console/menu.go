package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seldonlabs/bookstore/app/reports"
	"github.com/seldonlabs/bookstore/models"
)

// option is one labeled menu entry. Menus are tables of options rather than
// chains of string comparisons so the set of actions per level is enumerable.
type option struct {
	key   string
	label string
	run   func() error
}

// Options configures a Controller. Zero values fall back to the defaults:
// "$" currency, top three sellers, discarded logs.
type Options struct {
	Currency   string
	TopSellers int
	Logger     *slog.Logger
}

// Controller drives the interactive menus against the catalog and ledger.
// It owns no state of its own beyond formatting configuration.
type Controller struct {
	catalog    *models.CatalogRepository
	ledger     *models.SalesLedger
	prompter   *Prompter
	out        io.Writer
	log        *slog.Logger
	currency   string
	topSellers int
}

func NewController(catalog *models.CatalogRepository, ledger *models.SalesLedger, in io.Reader, out io.Writer, opts Options) *Controller {
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.TopSellers <= 0 {
		opts.TopSellers = 3
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		catalog:    catalog,
		ledger:     ledger,
		prompter:   NewPrompter(in, out),
		out:        out,
		log:        opts.Logger,
		currency:   opts.Currency,
		topSellers: opts.TopSellers,
	}
}

// Run starts the main menu loop and blocks until the operator exits. End of
// input is treated like choosing Exit so piped sessions terminate cleanly.
func (c *Controller) Run() error {
	err := c.runMenu("Bookstore Management System", "Exit", []option{
		{"1", "Product management", c.productMenu},
		{"2", "Register sale", c.registerSale},
		{"3", "Sales list", c.listSales},
		{"4", "Reports", c.reportMenu},
	})
	if errors.Is(err, ErrInputClosed) {
		err = nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Goodbye!")
	return nil
}

// runMenu loops printing the menu and dispatching the chosen option until
// the back/exit entry (always the last key) is picked. Unrecognized input
// re-prompts at the same level.
func (c *Controller) runMenu(title, exitLabel string, opts []option) error {
	exitKey := strconv.Itoa(len(opts) + 1)
	for {
		fmt.Fprintf(c.out, "\n--- %s ---\n", title)
		for _, o := range opts {
			fmt.Fprintf(c.out, "%s. %s\n", o.key, o.label)
		}
		fmt.Fprintf(c.out, "%s. %s\n", exitKey, exitLabel)
		choice, err := c.prompter.Text("Choose an option: ")
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if choice == exitKey {
			return nil
		}
		var picked *option
		for i := range opts {
			if opts[i].key == choice {
				picked = &opts[i]
				break
			}
		}
		if picked == nil {
			fmt.Fprintln(c.out, "Invalid option. Please try again.")
			continue
		}
		if err := picked.run(); err != nil {
			return err
		}
	}
}

func (c *Controller) productMenu() error {
	return c.runMenu("Product Management", "Back to main menu", []option{
		{"1", "Add product", c.addProduct},
		{"2", "Update product", c.updateProduct},
		{"3", "Delete product", c.deleteProduct},
		{"4", "List products", c.listProducts},
	})
}

func (c *Controller) reportMenu() error {
	return c.runMenu("Reports", "Back to main menu", []option{
		{"1", fmt.Sprintf("Top %d best-selling products", c.topSellers), c.topSellersReport},
		{"2", "Sales by author", c.salesByAuthorReport},
		{"3", "Income report", c.incomeReport},
	})
}

func (c *Controller) addProduct() error {
	fmt.Fprintln(c.out, "\n--- Add Product ---")
	title, err := c.prompter.RequiredText("Title: ")
	if err != nil {
		return err
	}
	if _, err := c.catalog.Find(title); err == nil {
		fmt.Fprintln(c.out, "Product already exists.")
		return nil
	}
	author, err := c.prompter.RequiredText("Author: ")
	if err != nil {
		return err
	}
	category, err := c.prompter.RequiredText("Category: ")
	if err != nil {
		return err
	}
	price, err := c.prompter.PositiveDecimal("Price: ")
	if err != nil {
		return err
	}
	stock, err := c.prompter.PositiveInt("Stock: ")
	if err != nil {
		return err
	}
	p := models.Product{Title: title, Author: author, Category: category, Price: price, Stock: stock}
	if err := c.catalog.Add(p); err != nil {
		if errors.Is(err, models.ErrDuplicateTitle) {
			fmt.Fprintln(c.out, "Product already exists.")
			return nil
		}
		return err
	}
	c.log.Info("product added", "title", title)
	fmt.Fprintln(c.out, "Product added successfully.")
	return nil
}

func (c *Controller) updateProduct() error {
	fmt.Fprintln(c.out, "\n--- Update Product ---")
	title, err := c.prompter.RequiredText("Enter product title to update: ")
	if err != nil {
		return err
	}
	if _, err := c.catalog.Find(title); err != nil {
		fmt.Fprintln(c.out, "Product not found.")
		return nil
	}
	fmt.Fprintln(c.out, "Leave field empty to keep current value.")

	var upd models.ProductUpdate
	author, err := c.prompter.Text("New author: ")
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(author); v != "" {
		upd.Author = &v
	}
	category, err := c.prompter.Text("New category: ")
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(category); v != "" {
		upd.Category = &v
	}
	price, err := c.prompter.Text("New price: ")
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(price); v != "" {
		if d, perr := decimal.NewFromString(v); perr != nil {
			fmt.Fprintln(c.out, "Invalid price. Keeping previous value.")
		} else {
			upd.Price = &d
		}
	}
	stock, err := c.prompter.Text("New stock: ")
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(stock); v != "" {
		if n, perr := strconv.Atoi(v); perr != nil {
			fmt.Fprintln(c.out, "Invalid stock. Keeping previous value.")
		} else {
			upd.Stock = &n
		}
	}

	issues, err := c.catalog.Update(title, upd)
	if err != nil {
		fmt.Fprintln(c.out, "Product not found.")
		return nil
	}
	for _, issue := range issues {
		switch issue.Field {
		case "price":
			fmt.Fprintln(c.out, "Price must be positive. Keeping previous value.")
		case "stock":
			fmt.Fprintln(c.out, "Stock must be non-negative. Keeping previous value.")
		}
	}
	c.log.Info("product updated", "title", title)
	fmt.Fprintln(c.out, "Product updated.")
	return nil
}

func (c *Controller) deleteProduct() error {
	fmt.Fprintln(c.out, "\n--- Delete Product ---")
	title, err := c.prompter.RequiredText("Enter product title to delete: ")
	if err != nil {
		return err
	}
	if err := c.catalog.Remove(title); err != nil {
		fmt.Fprintln(c.out, "Product not found.")
		return nil
	}
	c.log.Info("product deleted", "title", title)
	fmt.Fprintln(c.out, "Product deleted.")
	return nil
}

func (c *Controller) listProducts() error {
	fmt.Fprintln(c.out, "\n--- Product List ---")
	products := c.catalog.List()
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products available.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(c.out, "Title: %s, Author: %s, Category: %s, Price: %s%s, Stock: %d\n",
			p.Title, p.Author, p.Category, c.currency, p.Price.StringFixed(2), p.Stock)
	}
	return nil
}

func (c *Controller) registerSale() error {
	fmt.Fprintln(c.out, "\n--- Register Sale ---")
	client, err := c.prompter.RequiredText("Client name: ")
	if err != nil {
		return err
	}
	title, err := c.prompter.RequiredText("Product title: ")
	if err != nil {
		return err
	}
	product, err := c.catalog.Find(title)
	if err != nil {
		fmt.Fprintln(c.out, "Product not found.")
		return nil
	}
	if product.Stock == 0 {
		fmt.Fprintln(c.out, "No stock available for this product.")
		return nil
	}
	quantity, err := c.prompter.PositiveInt("Quantity: ")
	if err != nil {
		return err
	}
	discount, err := c.prompter.NonNegativeDecimal("Discount percentage (0 if none): ")
	if err != nil {
		return err
	}

	sale, err := c.ledger.Register(client, title, quantity, discount)
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		fmt.Fprintln(c.out, "Product not found.")
	case errors.Is(err, models.ErrOutOfStock):
		fmt.Fprintln(c.out, "No stock available for this product.")
	case errors.Is(err, models.ErrInsufficientStock):
		fmt.Fprintln(c.out, "Insufficient stock.")
	case errors.Is(err, models.ErrInvalidDiscount):
		fmt.Fprintln(c.out, "Discount must be between 0 and 100.")
	case err != nil:
		return err
	default:
		c.log.Info("sale registered", "id", sale.ID, "title", sale.ProductTitle, "quantity", sale.Quantity)
		fmt.Fprintln(c.out, "Sale registered successfully.")
	}
	return nil
}

func (c *Controller) listSales() error {
	fmt.Fprintln(c.out, "\n--- Sales List ---")
	sales := c.ledger.List()
	if len(sales) == 0 {
		fmt.Fprintln(c.out, "No sales registered.")
		return nil
	}
	for _, s := range sales {
		fmt.Fprintf(c.out, "Client: %s, Product: %s, Quantity: %d, Date: %s, Discount: %s%%\n",
			s.Client, s.ProductTitle, s.Quantity, s.Date.Format(models.SaleDateFormat), s.Discount.String())
	}
	return nil
}

func (c *Controller) topSellersReport() error {
	fmt.Fprintf(c.out, "\n--- Top %d Best-Selling Products ---\n", c.topSellers)
	totals := reports.TopSellers(c.ledger.List(), c.topSellers)
	if len(totals) == 0 {
		fmt.Fprintln(c.out, "No sales data available.")
		return nil
	}
	for i, t := range totals {
		fmt.Fprintf(c.out, "%d. %s - %d sold\n", i+1, t.Title, t.Quantity)
	}
	return nil
}

func (c *Controller) salesByAuthorReport() error {
	fmt.Fprintln(c.out, "\n--- Sales by Author ---")
	if len(c.ledger.List()) == 0 {
		fmt.Fprintln(c.out, "No sales data available.")
		return nil
	}
	for _, t := range reports.SalesByAuthor(c.catalog, c.ledger.List()) {
		fmt.Fprintf(c.out, "Author: %s, Total sold: %d\n", t.Author, t.Quantity)
	}
	return nil
}

func (c *Controller) incomeReport() error {
	fmt.Fprintln(c.out, "\n--- Income Report ---")
	sales := c.ledger.List()
	if len(sales) == 0 {
		fmt.Fprintln(c.out, "No sales data available.")
		return nil
	}
	report := reports.Income(c.catalog, sales)
	fmt.Fprintf(c.out, "Gross income (without discount): %s%s\n", c.currency, report.Gross.StringFixed(2))
	fmt.Fprintf(c.out, "Net income (with discount): %s%s\n", c.currency, report.Net.StringFixed(2))
	return nil
}
