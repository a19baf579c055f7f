package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/Jvntrials/COGSHALFHALF/renderer"
	"github.com/google/subcommands"
)

// purchaseCmd holds the flags for the 'purchase' subcommand.
type purchaseCmd struct {
	item     string
	quantity string
	cost     string
	date     string
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record a purchase and its stock entry" }
func (*purchaseCmd) Usage() string {
	return `halfhalf purchase -item <name> -quantity <n> -cost <total> [-date <date>]

  Records a purchase in the ledger and adds a matching inventory entry,
  with its cost per unit derived from the purchase.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Name of the purchased item")
	f.StringVar(&c.quantity, "quantity", "", "Quantity purchased")
	f.StringVar(&c.cost, "cost", "", "Total cost of the purchase")
	f.StringVar(&c.date, "date", "", "Purchase date, defaults to now. See 'halfhalf topic dates' for formats")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	quantity, err := parsePositiveAmount("quantity", c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := parseNonNegativeAmount("cost", c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := shop.ParseTimestamp(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var p shop.Purchase
	var entry shop.InventoryItem
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		b, entry = b.RecordPurchase(shop.Purchase{Item: c.item, Quantity: quantity, Cost: cost, Date: date})
		p = b.Purchases[len(b.Purchases)-1]
		return b, nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Purchase(p, entry, *currency))
	return subcommands.ExitSuccess
}
