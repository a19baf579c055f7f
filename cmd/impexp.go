package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	shop "github.com/Jvntrials/COGSHALFHALF"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book as a backup document" }
func (*exportCmd) Usage() string {
	return `halfhalf export [-o <file>]

  Writes the whole book as a single JSON document, to stdout or to the
  given file. The document can be restored later with 'halfhalf import'.

Usage Examples:
# Write a dated backup file next to the book.
$ halfhalf export -o ` + shop.ExportFilename(shop.Now()) + `

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "File to write to, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := openStore().Book()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading book: %v\n", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := shop.ExportBook(w, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting book: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		fmt.Fprintf(os.Stderr, "✅ Successfully exported book to %q.\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with an exported document" }
func (*importCmd) Usage() string {
	return `halfhalf import [-f] <file>

  Reads an exported document and replaces the whole book with it. The
  current book is overwritten, not merged. Legacy documents are healed
  on the way in. Asks for confirmation unless -f is set.

Usage Examples:
# Restore a backup, confirming interactively.
$ halfhalf import halfhalf-backup-2026-08-25.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Replace the book without asking for confirmation")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	file, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	b, err := shop.ImportBook(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Document %q holds %d inventory entries, %d purchases, %d sales and %d expenses.\n",
		name, len(b.Inventory), len(b.Purchases), len(b.Sales), len(b.OtherExpenses))

	if !c.force && !confirm(fmt.Sprintf("Replace the current book %q?", *bookFile)) {
		fmt.Fprintln(os.Stderr, "Import aborted.")
		return subcommands.ExitFailure
	}

	if err := openStore().Replace(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully imported %q.\n", name)
	return subcommands.ExitSuccess
}

// confirm asks a yes or no question on stdin, no is the default.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
