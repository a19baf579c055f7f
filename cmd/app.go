// Package cmd implements the CLI application to keep a small shop's book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&purchaseCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&editSaleCmd{}, "ledger")
	c.Register(&deleteSaleCmd{}, "ledger")
	c.Register(&addItemCmd{}, "ledger")
	c.Register(&editItemCmd{}, "ledger")
	c.Register(&deleteItemCmd{}, "ledger")
	c.Register(&rentCmd{}, "ledger")
	c.Register(&addExpenseCmd{}, "ledger")
	c.Register(&deleteExpenseCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&stockCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&fmtCmd{}, "data")
	c.Register(&queryCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", defaultBookFile(), "Path to the book file")
var currency = flag.String("currency", "PHP", "ISO 4217 currency code used to display amounts")

// defaultBookFile resolves the book file from the environment, so shell
// sessions can pin a book without repeating the flag.
func defaultBookFile() string {
	if path := os.Getenv("HALFHALF_BOOK"); path != "" {
		return path
	}
	return "book.json"
}

// openStore opens the store on the app book file. Reading the file is
// deferred to the first use.
func openStore() *shop.Store {
	return shop.OpenStore(*bookFile)
}

// parseAmount parses the value of a decimal flag.
func parseAmount(name, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("missing -%s", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s %q: a number is expected", name, value)
	}
	return d, nil
}

// parsePositiveAmount is parseAmount for flags that must be strictly
// positive, like a quantity or a revenue.
func parsePositiveAmount(name, value string) (decimal.Decimal, error) {
	d, err := parseAmount(name, value)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("-%s must be positive, got %s", name, d)
	}
	return d, nil
}

// parseNonNegativeAmount is parseAmount for flags where zero is fine but a
// negative value is not, like a cost.
func parseNonNegativeAmount(name, value string) (decimal.Decimal, error) {
	d, err := parseAmount(name, value)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("-%s cannot be negative, got %s", name, d)
	}
	return d, nil
}

// printMarkdown renders markdown to stdout, styled for the terminal.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(content)
		return
	}
	out, err := r.Render(content)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
