// Package config handles configuration file parsing and validation for spamlists.
//
// The configuration names the mail root, where each user's whitelist and
// blacklist live inside its directory, and where and how the log file is
// written. Only these keys are accepted:
//
//	source_path              mail root, one sub-directory per user (required)
//	whitelist_relative_path  default /.spamassassin/whitelist
//	blacklist_relative_path  default /.spamassassin/blacklist
//	log_path                 default log/history.log
//	log_format               default [%(levelname)s:%(name)s:%(asctime)s]: %(message)s
//
// # Formats
//
// The file format is chosen by extension. Plain files hold one PARAMETER=VALUE
// per line; a malformed line is a CONFIG_SYNTAX_ERROR and a key outside the
// list above is an UNKNOWN_PARAMETER error. Files ending in .toml or .yaml/.yml
// are decoded strictly with the same keys.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/opt/etc/spamlists/parameters.config")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Relative source_path and log_path values are resolved against the directory
// of the configuration file.
package config
