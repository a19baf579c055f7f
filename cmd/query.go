package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the book with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `halfhalf query <jsonpath>

  Evaluates a JSONPath expression against the book document and prints
  the result as JSON. Handy for scripting on top of the book without
  parsing the whole file.

Usage Examples:
# Revenue of the last recorded sale.
$ halfhalf query '$.sales[-1:].revenue'

# All item names in the inventory.
$ halfhalf query '$.inventory[*].item'

`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	b, err := openStore().Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	// Query the canonical document, not the in-memory structs, so paths
	// use the same keys as the book file.
	var buf bytes.Buffer
	if err := shop.ExportBook(&buf, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding book: %v\n", err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
