package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must stay
// in sync with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*"),
	},
	Sub: map[string]*complete.Command{
		"expense": {Flags: map[string]complete.Predictor{
			"d": predict.Nothing, "v": predict.Nothing, "a": predict.Nothing,
			"on": predict.Nothing, "at": predict.Nothing,
		}},
		"income": {Flags: map[string]complete.Predictor{
			"d": predict.Nothing, "v": predict.Nothing, "a": predict.Nothing,
			"on": predict.Nothing, "at": predict.Nothing,
		}},
		"list": {Flags: map[string]complete.Predictor{
			"k": predict.Set{"all", "expense", "income"},
			"s": predict.Nothing, "d": predict.Nothing,
			"head": predict.Nothing, "tail": predict.Nothing,
		}},
		"balance": {},
		"report": {Flags: map[string]complete.Predictor{
			"p":    predict.Set{"day", "week", "month", "quarter", "year"},
			"prev": predict.Nothing,
			"d":    predict.Nothing,
		}},
		"search": {Flags: map[string]complete.Predictor{
			"s": predict.Nothing, "e": predict.Nothing,
			"desc": predict.Nothing, "vendor": predict.Nothing, "amount": predict.Nothing,
		}},
		"topic": {},
	},
}

func main() {
	// No-op unless the shell is asking for completions.
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
