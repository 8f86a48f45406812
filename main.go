package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/salestrace/salestrace/internal/cli"
	"github.com/salestrace/salestrace/internal/cli/report"
	"github.com/salestrace/salestrace/internal/cli/search"
	"github.com/salestrace/salestrace/internal/cli/web"
	"github.com/salestrace/salestrace/internal/config"
	"github.com/salestrace/salestrace/internal/logger"
)

var configPath string

var subcommands = map[string]cli.Command{
	"web":    web.NewCommand(),
	"report": report.NewCommand(),
	"search": search.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{
	"web":    nil,
	"report": nil,
	"search": nil,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "salestrace.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse flags: %s\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	if err := command.Run(conf, log); err != nil {
		log.Fatal("command failed", "command", commandName, "error", err.Error())
	}
}

func printHelp() {
	printUsage()

	for c, cLogic := range subcommands {
		fmt.Printf("subcommmand <%s>: %s\n", c, cLogic.Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: salestrace <subcommand> [flags]\n\n")
}
