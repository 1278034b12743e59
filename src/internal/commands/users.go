package commands

import (
	"flag"
	"fmt"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/lists"
)

func CreateUsersCommand() *UsersCommand {
	gc := &UsersCommand{
		fs: flag.NewFlagSet("users", flag.ContinueOnError),
	}

	gc.fs.StringVar(&gc.AllowPath, "allow", "", "File with the only users to show, one per line")
	gc.fs.StringVar(&gc.DenyPath, "deny", "", "File with users to hide, one per line")

	return gc
}

// UsersCommand prints the users an apply run would affect.
type UsersCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	mgr    *lists.Manager
	filter lists.Filter

	AllowPath string
	DenyPath  string
}

func (g *UsersCommand) Name() string {
	return g.fs.Name()
}

func (g *UsersCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.AllowPath != "" && g.DenyPath != "" {
		return apperrors.NewConflictingFlagsError("-allow and -deny can not be used together")
	}

	_, mgr, err := loadManager(ctx)
	if err != nil {
		return err
	}
	g.mgr = mgr

	tokens, err := tokenizeAll(nonEmpty(map[string]string{
		string(lists.FilterAllow): g.AllowPath,
		string(lists.FilterDeny):  g.DenyPath,
	}))
	if err != nil {
		return err
	}
	if len(tokens) > 0 {
		g.filter = make(lists.Filter, len(tokens))
		for kind, users := range tokens {
			g.filter[lists.FilterKind(kind)] = users
		}
	}

	return nil
}

func (g *UsersCommand) Run() error {
	users, err := lists.FilterUsers(g.mgr.Users(), g.filter)
	if err != nil {
		return err
	}

	out := g.ctx.Stdout()
	for _, user := range users {
		if _, err := fmt.Fprintln(out, user); err != nil {
			return err
		}
	}
	return nil
}
