package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Jvntrials/COGSHALFHALF/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
// Run COMP_INSTALL=1 halfhalf to install it in the shell profile.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"book-file": predict.Files("*.json"),
		"currency":  predict.Set{"PHP", "USD", "EUR", "GBP", "JPY", "SGD"},
	},
	Sub: map[string]*complete.Command{
		"purchase": {Flags: map[string]complete.Predictor{
			"item":     predict.Something,
			"quantity": predict.Something,
			"cost":     predict.Something,
			"date":     predict.Something,
		}},
		"sell": {Flags: map[string]complete.Predictor{
			"revenue": predict.Something,
			"date":    predict.Something,
		}},
		"edit-sale": {Flags: map[string]complete.Predictor{
			"id":      predict.Something,
			"revenue": predict.Something,
			"date":    predict.Something,
		}},
		"delete-sale": {Flags: map[string]complete.Predictor{
			"id": predict.Something,
		}},
		"add-item": {Flags: map[string]complete.Predictor{
			"name":          predict.Something,
			"quantity":      predict.Something,
			"cost-per-unit": predict.Something,
			"date":          predict.Something,
		}},
		"edit-item": {Flags: map[string]complete.Predictor{
			"id":            predict.Something,
			"name":          predict.Something,
			"quantity":      predict.Something,
			"cost-per-unit": predict.Something,
			"date":          predict.Something,
		}},
		"delete-item": {Flags: map[string]complete.Predictor{
			"id": predict.Something,
		}},
		"rent": {Flags: map[string]complete.Predictor{
			"amount": predict.Something,
		}},
		"add-expense": {Flags: map[string]complete.Predictor{
			"name":   predict.Something,
			"amount": predict.Something,
		}},
		"delete-expense": {Flags: map[string]complete.Predictor{
			"id": predict.Something,
		}},
		"summary": {},
		"stock":   {},
		"log": {Flags: map[string]complete.Predictor{
			"head": predict.Something,
			"tail": predict.Something,
		}},
		"export": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.json"),
		}},
		"import": {
			Flags: map[string]complete.Predictor{"f": predict.Nothing},
			Args:  predict.Files("*.json"),
		},
		"fmt":    {},
		"query":  {},
		"topic":  {Args: predict.Set{"readme", "book", "costing", "dates", "backup", "*"}},
		"assist": {},
	},
}

func main() {
	// In a completion context this prints the candidates and exits.
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// An unknown subcommand may be an extension, a halfhalf-<name>
	// binary on the PATH.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
