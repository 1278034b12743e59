package commands

import (
	"flag"
	"fmt"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/lists"
)

func CreateShowCommand() *ShowCommand {
	gc := &ShowCommand{
		fs: flag.NewFlagSet("show", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.User, "user", "", "User whose list to print")
	gc.fs.StringVar(&gc.List, "list", string(lists.Whitelist), "List to print (whitelist or blacklist)")

	return gc
}

// ShowCommand prints one list file of one user.
type ShowCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	mgr  *lists.Manager
	list lists.ListName

	User string
	List string
}

func (g *ShowCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.User == "" {
		return apperrors.NewMissingFlagError("-user is required")
	}

	list, err := lists.ParseListName(g.List)
	if err != nil {
		return err
	}
	g.list = list

	if _, g.mgr, err = loadManager(ctx); err != nil {
		return err
	}
	return nil
}

func (g *ShowCommand) Run() error {
	entries, err := g.mgr.Entries(g.User, g.list)
	if err != nil {
		return err
	}

	out := g.ctx.Stdout()
	for _, entry := range entries {
		if _, err := fmt.Fprintln(out, entry); err != nil {
			return err
		}
	}
	return nil
}
