package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spamlists/spamlists/src/internal/commands"
	"github.com/spamlists/spamlists/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "/opt/etc/spamlists/parameters.config", "Path to configuration file (key=value, .toml or .yaml)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mail domain whitelist/blacklist manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  apply                   Add (-add) or remove (-remove) domains for every selected user\n")
		fmt.Fprintf(os.Stderr, "  users                   Print the users of the mail root\n")
		fmt.Fprintf(os.Stderr, "  show                    Print one list of one user\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP API server\n\n")
		fmt.Fprintf(os.Stderr, "Run '%s <command> -h' for command options.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateApplyCommand(),
		commands.CreateUsersCommand(),
		commands.CreateShowCommand(),
		commands.CreateConfigCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() != subcommand {
			continue
		}

		if err := cmd.Init(args[1:], ctx); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				os.Exit(0)
			}
			log.Errorf("Failed to initialize command: %v", err)
			ctx.Close()
			fmt.Fprintf(os.Stderr, "\n")
			flag.Usage()
			os.Exit(2)
		}

		if err := cmd.Run(); err != nil {
			log.Errorf("Failed to run command: %v", err)
			ctx.Close()
			os.Exit(1)
		}

		ctx.Close()
		os.Exit(0)
	}

	log.Errorf("Unknown subcommand: %s", subcommand)
	flag.Usage()
	os.Exit(2)
}
