package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mjacinto/tradelog/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: exits early when invoked by the shell's
	// completion hook, otherwise a no-op.
	completion().Complete("tlf")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["import"].Flags = map[string]complete.Predictor{
		"f":       predict.Files("*.csv"),
		"l":       predict.Something,
		"force":   predict.Nothing,
		"dry-run": predict.Nothing,
	}
	sub["trades"].Flags = map[string]complete.Predictor{
		"f":   predict.Files("*.csv"),
		"csv": predict.Nothing,
	}
	return &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"data": predict.Dirs("*")},
	}
}
