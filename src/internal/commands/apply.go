package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spamlists/spamlists/src/internal/config"
	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/lists"
	"github.com/spamlists/spamlists/src/internal/log"
)

// Names of the files looked up in the -auto directory.
const (
	autoWhitelist = "whitelist"
	autoBlacklist = "blacklist"
	autoAllow     = "allow"
	autoDeny      = "deny"
)

func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ContinueOnError),
	}

	gc.fs.BoolVar(&gc.Add, "add", false, "Add the domains to the lists of the selected users")
	gc.fs.BoolVar(&gc.Remove, "remove", false, "Remove the domains from the lists of the selected users")
	gc.fs.StringVar(&gc.WhitelistPath, "whitelist", "", "File with whitelist domains, one per line")
	gc.fs.StringVar(&gc.BlacklistPath, "blacklist", "", "File with blacklist domains, one per line")
	gc.fs.StringVar(&gc.AllowPath, "allow", "", "File with the only users to apply the change to, one per line")
	gc.fs.StringVar(&gc.DenyPath, "deny", "", "File with users to exclude from the change, one per line")
	gc.fs.StringVar(&gc.AutoDir, "auto", "", "Directory holding files named whitelist, blacklist, allow and/or deny")

	return gc
}

type ApplyCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	cfg    *config.Config
	mgr    *lists.Manager
	lists  lists.Lists
	filter lists.Filter

	Add           bool
	Remove        bool
	WhitelistPath string
	BlacklistPath string
	AllowPath     string
	DenyPath      string
	AutoDir       string
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}
	if g.fs.NArg() > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("unexpected arguments: %v", g.fs.Args()), nil)
	}

	if err := g.validateFlags(); err != nil {
		return err
	}

	cfg, mgr, err := loadManager(ctx)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.mgr = mgr

	listFiles, filterFiles, err := g.inputFiles()
	if err != nil {
		return err
	}

	tokens, err := tokenizeAll(listFiles)
	if err != nil {
		return err
	}
	g.lists = make(lists.Lists, len(tokens))
	for name, entries := range tokens {
		g.lists[lists.ListName(name)] = entries
	}

	if tokens, err = tokenizeAll(filterFiles); err != nil {
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

// validateFlags checks the flag combination before anything is read.
func (g *ApplyCommand) validateFlags() error {
	if !g.Add && !g.Remove {
		return apperrors.NewMissingFlagError("one of -add or -remove is required")
	}
	if g.Add && g.Remove {
		return apperrors.NewConflictingFlagsError("-add and -remove can not be used together")
	}

	explicit := g.WhitelistPath != "" || g.BlacklistPath != "" || g.AllowPath != "" || g.DenyPath != ""
	if g.AutoDir != "" && explicit {
		return apperrors.NewConflictingFlagsError("-whitelist, -blacklist, -allow and -deny can not be used with -auto")
	}
	if g.AutoDir == "" && g.WhitelistPath == "" && g.BlacklistPath == "" {
		return apperrors.NewMissingFlagError("no whitelist or blacklist file given (use -whitelist, -blacklist or -auto)")
	}
	if g.AllowPath != "" && g.DenyPath != "" {
		return apperrors.NewConflictingFlagsError("-allow and -deny can not be used together")
	}

	return nil
}

// inputFiles returns the list and filter files to read, keyed by list name
// and filter kind.
func (g *ApplyCommand) inputFiles() (map[string]string, map[string]string, error) {
	if g.AutoDir == "" {
		listFiles := nonEmpty(map[string]string{
			string(lists.Whitelist): g.WhitelistPath,
			string(lists.Blacklist): g.BlacklistPath,
		})
		filterFiles := nonEmpty(map[string]string{
			string(lists.FilterAllow): g.AllowPath,
			string(lists.FilterDeny):  g.DenyPath,
		})
		return listFiles, filterFiles, nil
	}

	entries, err := os.ReadDir(g.AutoDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, apperrors.NewFileNotFoundError(fmt.Sprintf("directory does not exist: %s", g.AutoDir), err)
		}
		return nil, nil, fmt.Errorf("failed to read %s: %w", g.AutoDir, err)
	}

	listFiles := make(map[string]string)
	filterFiles := make(map[string]string)
	for _, entry := range entries {
		path := filepath.Join(g.AutoDir, entry.Name())
		switch entry.Name() {
		case autoWhitelist, autoBlacklist:
			listFiles[entry.Name()] = path
		case autoAllow, autoDeny:
			filterFiles[entry.Name()] = path
		}
	}

	if len(listFiles) == 0 {
		return nil, nil, apperrors.NewMissingFlagError(fmt.Sprintf("no whitelist or blacklist file in %s", g.AutoDir))
	}
	if len(filterFiles) > 1 {
		return nil, nil, apperrors.NewConflictingFlagsError(fmt.Sprintf("%s holds both allow and deny files", g.AutoDir))
	}
	log.Debugf("Found %d list file(s) and %d filter file(s) in %s", len(listFiles), len(filterFiles), g.AutoDir)

	return listFiles, filterFiles, nil
}

func (g *ApplyCommand) Run() error {
	warnSuspicious(g.lists)

	var err error
	if g.Add {
		_, err = g.mgr.Add(g.lists, g.filter)
	} else {
		_, err = g.mgr.Remove(g.lists, g.filter)
	}
	if err != nil {
		return fmt.Errorf("failed to apply changes: %w", err)
	}

	return nil
}

func nonEmpty(paths map[string]string) map[string]string {
	result := make(map[string]string, len(paths))
	for key, path := range paths {
		if path != "" {
			result[key] = path
		}
	}
	return result
}

// tokenizeAll reads every file of paths, in key order.
func tokenizeAll(paths map[string]string) (map[string][]string, error) {
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make(map[string][]string, len(paths))
	for _, key := range keys {
		tokens, err := lists.Tokenize(paths[key])
		if err != nil {
			return nil, err
		}
		log.Debugf("Read %d entries from %s", len(tokens), paths[key])
		result[key] = tokens
	}
	return result, nil
}
