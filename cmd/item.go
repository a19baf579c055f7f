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

// addItemCmd holds the flags for the 'add-item' subcommand.
type addItemCmd struct {
	name        string
	quantity    string
	costPerUnit string
	date        string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add an inventory item without a purchase" }
func (*addItemCmd) Usage() string {
	return `halfhalf add-item -name <name> [-quantity <n>] [-cost-per-unit <amount>] [-date <date>]

  Adds a stock entry directly, for opening stock or corrections. The name
  must not already exist in the inventory (names are compared ignoring
  case). Regular restocking should go through 'halfhalf purchase' instead,
  which also records the money spent.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item")
	f.StringVar(&c.quantity, "quantity", "0", "Initial quantity")
	f.StringVar(&c.costPerUnit, "cost-per-unit", "0", "Cost per unit")
	f.StringVar(&c.date, "date", "", "Entry date, defaults to now. See 'halfhalf topic dates' for formats")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	quantity, err := parseNonNegativeAmount("quantity", c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	costPerUnit, err := parseNonNegativeAmount("cost-per-unit", c.costPerUnit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	date, err := shop.ParseTimestamp(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var item shop.InventoryItem
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		b, err := b.CreateItem(shop.InventoryItem{Name: c.name, Quantity: quantity, CostPerUnit: costPerUnit, Date: date})
		if err != nil {
			return b, err
		}
		item = b.Inventory[len(b.Inventory)-1]
		return b, nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Item(item, *currency))
	return subcommands.ExitSuccess
}

// editItemCmd holds the flags for the 'edit-item' subcommand.
type editItemCmd struct {
	id          string
	name        string
	quantity    string
	costPerUnit string
	date        string
}

func (*editItemCmd) Name() string     { return "edit-item" }
func (*editItemCmd) Synopsis() string { return "edit an inventory entry" }
func (*editItemCmd) Usage() string {
	return `halfhalf edit-item -id <id> [-name <name>] [-quantity <n>] [-cost-per-unit <amount>] [-date <date>]

  Updates the inventory entry with the given id. Only the flags that are
  set change, the other fields keep their recorded value.
`
}

func (c *editItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to edit")
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.quantity, "quantity", "", "New quantity")
	f.StringVar(&c.costPerUnit, "cost-per-unit", "", "New cost per unit")
	f.StringVar(&c.date, "date", "", "New date. See 'halfhalf topic dates' for formats")
}

func (c *editItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.name == "" && c.quantity == "" && c.costPerUnit == "" && c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to change, set -name, -quantity, -cost-per-unit or -date")
		return subcommands.ExitUsageError
	}

	var item shop.InventoryItem
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		var found bool
		item, found = b.FindItem(c.id)
		if !found {
			return b, fmt.Errorf("no inventory entry with id %q", c.id)
		}
		if c.name != "" {
			item.Name = c.name
		}
		if c.quantity != "" {
			quantity, err := parseNonNegativeAmount("quantity", c.quantity)
			if err != nil {
				return b, err
			}
			item.Quantity = quantity
		}
		if c.costPerUnit != "" {
			costPerUnit, err := parseNonNegativeAmount("cost-per-unit", c.costPerUnit)
			if err != nil {
				return b, err
			}
			item.CostPerUnit = costPerUnit
		}
		if c.date != "" {
			date, err := shop.ParseTimestamp(c.date)
			if err != nil {
				return b, err
			}
			item.Date = date
		}
		return b.UpdateItem(item), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Item(item, *currency))
	return subcommands.ExitSuccess
}

// deleteItemCmd holds the flags for the 'delete-item' subcommand.
type deleteItemCmd struct {
	id string
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "delete an inventory entry" }
func (*deleteItemCmd) Usage() string {
	return `halfhalf delete-item -id <id>

  Deletes the inventory entry with the given id. The purchase that created
  it stays in the ledger: purchases record money spent and are never
  deleted.
`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to delete")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		if _, found := b.FindItem(c.id); !found {
			return b, fmt.Errorf("no inventory entry with id %q", c.id)
		}
		return b.DeleteItem(c.id), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting item: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted inventory entry %s\n", c.id)
	return subcommands.ExitSuccess
}
