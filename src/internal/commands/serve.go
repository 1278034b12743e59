package commands

import (
	"context"
	"flag"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spamlists/spamlists/src/internal/api"
	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

// ServeCommand runs the HTTP API server.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	mgr *lists.Manager

	bindAddr   string
	allowAll   bool
	shutdownIn time.Duration
}

// CreateServeCommand creates a new serve command.
func CreateServeCommand() *ServeCommand {
	c := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ContinueOnError),
	}

	c.fs.StringVar(&c.bindAddr, "listen", "127.0.0.1:8080", "Address to bind the HTTP server")
	c.fs.BoolVar(&c.allowAll, "allow-public", false, "Accept requests from any network, not only private ones")
	c.fs.DurationVar(&c.shutdownIn, "shutdown-timeout", 30*time.Second, "Time to wait for in-flight requests on shutdown")

	return c
}

// Name returns the command name.
func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

// Init initializes the serve command with arguments.
func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, mgr, err := loadManager(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.mgr = mgr

	return nil
}

// Run starts the HTTP API server and blocks until SIGINT or SIGTERM.
func (c *ServeCommand) Run() error {
	allowed := api.PrivateNetworks
	if c.allowAll {
		allowed = []netip.Prefix{}
		log.Warnf("Accepting requests from any network")
	}

	log.Infof("Serving mail root %s (%d users)", c.cfg.GetAbsSourcePath(), len(c.mgr.Users()))
	server := api.NewServer(c.cfg, c.mgr, c.bindAddr, allowed)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), c.shutdownIn)
		defer cancel()

		if err := server.Stop(ctx); err != nil {
			return err
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
