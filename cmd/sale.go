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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	revenue string
	date    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `halfhalf sell -revenue <amount> [-date <date>]

  Records a sale in the ledger and prints it with its assigned id.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.revenue, "revenue", "", "Revenue of the sale")
	f.StringVar(&c.date, "date", "", "Sale date, defaults to now. See 'halfhalf topic dates' for formats")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	revenue, err := parsePositiveAmount("revenue", c.revenue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := shop.ParseTimestamp(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var sale shop.Sale
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		b, sale = b.RecordSale(shop.Sale{Revenue: revenue, Date: date})
		return b, nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Sale(sale, *currency))
	return subcommands.ExitSuccess
}

// editSaleCmd holds the flags for the 'edit-sale' subcommand.
type editSaleCmd struct {
	id      string
	revenue string
	date    string
}

func (*editSaleCmd) Name() string     { return "edit-sale" }
func (*editSaleCmd) Synopsis() string { return "edit a recorded sale" }
func (*editSaleCmd) Usage() string {
	return `halfhalf edit-sale -id <id> [-revenue <amount>] [-date <date>]

  Updates the sale with the given id. Only the flags that are set change,
  the other fields keep their recorded value.
`
}

func (c *editSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the sale to edit")
	f.StringVar(&c.revenue, "revenue", "", "New revenue")
	f.StringVar(&c.date, "date", "", "New date. See 'halfhalf topic dates' for formats")
}

func (c *editSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.revenue == "" && c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, set -revenue or -date")
		return subcommands.ExitUsageError
	}

	var sale shop.Sale
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		var found bool
		sale, found = b.FindSale(c.id)
		if !found {
			return b, fmt.Errorf("no sale with id %q", c.id)
		}
		if c.revenue != "" {
			revenue, err := parsePositiveAmount("revenue", c.revenue)
			if err != nil {
				return b, err
			}
			sale.Revenue = revenue
		}
		if c.date != "" {
			date, err := shop.ParseTimestamp(c.date)
			if err != nil {
				return b, err
			}
			sale.Date = date
		}
		return b.UpdateSale(sale), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing sale: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Sale(sale, *currency))
	return subcommands.ExitSuccess
}

// deleteSaleCmd holds the flags for the 'delete-sale' subcommand.
type deleteSaleCmd struct {
	id string
}

func (*deleteSaleCmd) Name() string     { return "delete-sale" }
func (*deleteSaleCmd) Synopsis() string { return "delete a recorded sale" }
func (*deleteSaleCmd) Usage() string {
	return `halfhalf delete-sale -id <id>

  Deletes the sale with the given id from the ledger.
`
}

func (c *deleteSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the sale to delete")
}

func (c *deleteSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		if _, found := b.FindSale(c.id); !found {
			return b, fmt.Errorf("no sale with id %q", c.id)
		}
		return b.DeleteSale(c.id), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting sale: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted sale %s\n", c.id)
	return subcommands.ExitSuccess
}
