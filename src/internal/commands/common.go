package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

// LoggerName is the logger name written to the log file.
const LoggerName = "spamlists"

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer

	logFile io.Closer
}

// Stdout returns the writer command output goes to.
func (ctx *AppContext) Stdout() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}

// Close detaches and closes the log file, if one was opened.
func (ctx *AppContext) Close() {
	if ctx.logFile == nil {
		return
	}
	_ = log.SetFile(nil, "", "")
	if err := ctx.logFile.Close(); err != nil {
		log.Warnf("Failed to close log file: %v", err)
	}
	ctx.logFile = nil
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// openLogFile attaches the configured log file to the logger. From then on
// every warning, error and summary is also appended to it.
func openLogFile(cfg *config.Config, ctx *AppContext) error {
	if ctx.logFile != nil {
		return nil
	}
	f, err := log.OpenFile(cfg.GetAbsLogPath(), LoggerName, cfg.LogFormat)
	if err != nil {
		return err
	}
	ctx.logFile = f
	log.Debugf("Logging to %s", cfg.GetAbsLogPath())
	return nil
}

// loadManager loads the configuration, opens the log file and enumerates the
// users of the mail root.
func loadManager(ctx *AppContext) (*config.Config, *lists.Manager, error) {
	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if err := openLogFile(cfg, ctx); err != nil {
		return nil, nil, err
	}

	mgr, err := lists.NewManager(cfg, ctx.Stdout())
	if err != nil {
		return nil, nil, err
	}

	return cfg, mgr, nil
}

// warnSuspicious logs the entries that do not look like domain names.
func warnSuspicious(target lists.Lists) {
	suspicious := lists.SuspiciousEntries(target)
	for _, name := range lists.ListNames {
		for _, entry := range suspicious[name] {
			log.Warnf("%s entry %q does not look like a domain", name, entry)
		}
	}
}
