package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "heals and rewrites the book file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `halfhalf fmt

  Reads the book file, repairs what can be repaired (missing ids, legacy
  fields, malformed entries) and writes it back in the canonical layout.
  Loading already heals on the fly, fmt makes the result permanent even
  when no other command has written since.

Usage Examples:
# Rewrites the default book file.
$ halfhalf fmt

`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Formatting book %q...\n", *bookFile)

	s := openStore()
	b, err := s.Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := s.Replace(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book: %v\n", err)
		return subcommands.ExitFailure
	}

	stock := b.Stock()
	fmt.Fprintf(os.Stderr, "Kept %d inventory entries (%d items), %d purchases, %d sales, %d expenses.\n",
		len(b.Inventory), len(stock), len(b.Purchases), len(b.Sales), len(b.OtherExpenses))
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %q.\n", *bookFile)
	return subcommands.ExitSuccess
}
