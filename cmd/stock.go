package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Jvntrials/COGSHALFHALF/renderer"
	"github.com/google/subcommands"
)

// stockCmd holds the flags for the 'stock' subcommand.
type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display current stock grouped by item name" }
func (*stockCmd) Usage() string {
	return `halfhalf stock

  Displays the inventory grouped by item name, with total quantity and
  the cost per unit of the most recent entry of each item.
`
}

func (*stockCmd) SetFlags(*flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openStore().Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockMarkdown(b.Stock(), *currency))
	return subcommands.ExitSuccess
}
