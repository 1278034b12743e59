package commands

import (
	"flag"

	"github.com/spamlists/spamlists/src/internal/config"
)

func CreateConfigCommand() *ConfigCommand {
	return &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ContinueOnError),
	}
}

// ConfigCommand prints the effective configuration as TOML, defaults included.
type ConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *ConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *ConfigCommand) Run() error {
	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(g.ctx.Stdout())
	return err
}
