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

// rentCmd holds the flags for the 'rent' subcommand.
type rentCmd struct {
	amount string
}

func (*rentCmd) Name() string     { return "rent" }
func (*rentCmd) Synopsis() string { return "set the monthly rent" }
func (*rentCmd) Usage() string {
	return `halfhalf rent -amount <amount>

  Sets the monthly rent. The rent is a single value, setting it again
  replaces the previous one.
`
}

func (c *rentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Monthly rent amount")
}

func (c *rentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseNonNegativeAmount("amount", c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		return b.SetRent(amount), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting rent: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Rent set to %s\n", renderer.Amount(amount, *currency))
	return subcommands.ExitSuccess
}

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	name   string
	amount string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense beside rent" }
func (*addExpenseCmd) Usage() string {
	return `halfhalf add-expense -name <name> -amount <amount>

  Records an expense beside rent, like electricity or water, and prints
  it with its assigned id.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the expense")
	f.StringVar(&c.amount, "amount", "", "Amount of the expense")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := parsePositiveAmount("amount", c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var expense shop.Expense
	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		b, expense = b.AddExpense(shop.Expense{Name: c.name, Amount: amount})
		return b, nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding expense: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Expense(expense, *currency))
	return subcommands.ExitSuccess
}

// deleteExpenseCmd holds the flags for the 'delete-expense' subcommand.
type deleteExpenseCmd struct {
	id string
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete a recorded expense" }
func (*deleteExpenseCmd) Usage() string {
	return `halfhalf delete-expense -id <id>

  Deletes the expense with the given id. Rent is not an expense entry,
  use 'halfhalf rent -amount 0' to clear it.
`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the expense to delete")
}

func (c *deleteExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if _, err := openStore().Update(func(b shop.Book) (shop.Book, error) {
		found := false
		for _, e := range b.OtherExpenses {
			if e.ID == c.id {
				found = true
				break
			}
		}
		if !found {
			return b, fmt.Errorf("no expense with id %q", c.id)
		}
		return b.DeleteExpense(c.id), nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting expense: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted expense %s\n", c.id)
	return subcommands.ExitSuccess
}
