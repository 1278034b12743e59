package config

import (
	"path/filepath"

	"github.com/spamlists/spamlists/src/internal/log"
	"github.com/spamlists/spamlists/src/internal/utils"
)

const (
	DefaultWhitelistRelativePath = "/.spamassassin/whitelist"
	DefaultBlacklistRelativePath = "/.spamassassin/blacklist"
	DefaultLogPath               = "log/history.log"
	DefaultLogFormat             = log.DefaultFormat
)

// Config is the effective configuration of a run. It is loaded once at
// startup and passed explicitly to whatever needs it.
type Config struct {
	// SourcePath is the mail root; every sub-directory is a user.
	SourcePath string `toml:"source_path" yaml:"source_path" json:"source_path" validate:"required,dir"`
	// WhitelistRelativePath is the whitelist file location inside a user directory.
	WhitelistRelativePath string `toml:"whitelist_relative_path" yaml:"whitelist_relative_path" json:"whitelist_relative_path" validate:"required"`
	// BlacklistRelativePath is the blacklist file location inside a user directory.
	BlacklistRelativePath string `toml:"blacklist_relative_path" yaml:"blacklist_relative_path" json:"blacklist_relative_path" validate:"required"`
	// LogPath is the file every summary, warning and error is appended to.
	LogPath string `toml:"log_path" yaml:"log_path" json:"log_path" validate:"required"`
	// LogFormat is the log record layout, e.g. [%(levelname)s:%(name)s:%(asctime)s]: %(message)s
	LogFormat string `toml:"log_format" yaml:"log_format" json:"log_format" validate:"required,log_format"`

	_absConfigFilePath string
}

// Default returns a configuration holding the built-in defaults. SourcePath
// has no default and must be configured.
func Default() *Config {
	return &Config{
		WhitelistRelativePath: DefaultWhitelistRelativePath,
		BlacklistRelativePath: DefaultBlacklistRelativePath,
		LogPath:               DefaultLogPath,
		LogFormat:             DefaultLogFormat,
	}
}

// GetConfigDir returns the directory of the loaded configuration file.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsSourcePath returns the mail root, resolved against the config directory.
func (c *Config) GetAbsSourcePath() string {
	return utils.GetAbsolutePath(c.SourcePath, c.GetConfigDir())
}

// GetAbsLogPath returns the log file path, resolved against the config directory.
func (c *Config) GetAbsLogPath() string {
	return utils.GetAbsolutePath(c.LogPath, c.GetConfigDir())
}

// RelativePath returns the per-user relative path of the named list
// ("whitelist" or "blacklist").
func (c *Config) RelativePath(list string) (string, bool) {
	switch list {
	case "whitelist":
		return c.WhitelistRelativePath, true
	case "blacklist":
		return c.BlacklistRelativePath, true
	default:
		return "", false
	}
}
