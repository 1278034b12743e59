// Package commands implements CLI command handlers for spamlists.
//
// Each subcommand implements the Runner interface:
//   - Init(): parse arguments, validate flags and configuration, read inputs
//   - Run(): perform the command
//   - Name(): return the command name for routing
//
// Everything that can be checked without touching a list file is checked in
// Init, so a failing Init never leaves a partially modified mail root.
//
// # Available Commands
//
//   - apply: add domains to or remove them from the users' lists
//   - users: print the users of the mail root
//   - show: print one list of one user
//   - config: print the effective configuration
//   - serve: run the HTTP API
//
// # Example Usage
//
//	cmd := commands.CreateApplyCommand()
//	ctx := &commands.AppContext{ConfigPath: "/opt/etc/spamlists/parameters.config"}
//	defer ctx.Close()
//	if err := cmd.Init([]string{"-add", "-whitelist", "domains.txt"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
