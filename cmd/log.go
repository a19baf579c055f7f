package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Jvntrials/COGSHALFHALF/renderer"
	"github.com/google/subcommands"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	head int
	tail int
}

func (*logCmd) Name() string { return "log" }
func (*logCmd) Synopsis() string {
	return "display a chronological log of purchases, sales and expenses"
}
func (*logCmd) Usage() string {
	return `halfhalf log [-head <n> | -tail <n>]

  Displays every purchase, sale and expense in book order, oldest first.
  Use -head or -tail to limit the output to the first or last entries.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Only display the first n entries")
	f.IntVar(&c.tail, "tail", 0, "Only display the last n entries")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail are mutually exclusive")
		return subcommands.ExitUsageError
	}

	b, err := openStore().Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	entries := b.Activity()
	if c.head > 0 && c.head < len(entries) {
		entries = entries[:c.head]
	}
	if c.tail > 0 && c.tail < len(entries) {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.ActivityMarkdown(entries, *currency))
	return subcommands.ExitSuccess
}
