package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/spamlists/spamlists/src/internal/errors"
	"github.com/spamlists/spamlists/src/internal/log"
)

var parameterRegexp = regexp.MustCompile(`^([a-zA-Z_]+)\s*=\s*([^\s]+)$`)

// ValidParameters lists the keys accepted by the configuration file.
var ValidParameters = []string{
	"source_path",
	"whitelist_relative_path",
	"blacklist_relative_path",
	"log_path",
	"log_format",
}

// LoadConfig reads the configuration file at configPath on top of the
// defaults. The format is picked by extension: .toml and .yaml/.yml are
// decoded strictly, anything else is read as key=value lines.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError(fmt.Sprintf("configuration file not found: %s", configFile), err)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".toml":
		err = decodeTOML(content, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(content, cfg)
	default:
		err = decodeParameters(content, cfg)
	}
	if err != nil {
		return nil, err
	}

	cfg._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Mail root: %s", cfg.GetAbsSourcePath())

	return cfg, nil
}

// decodeParameters parses PARAMETER=VALUE lines. Blank lines and lines
// starting with '#' are skipped.
func decodeParameters(content []byte, cfg *Config) error {
	fields := map[string]*string{
		"source_path":             &cfg.SourcePath,
		"whitelist_relative_path": &cfg.WhitelistRelativePath,
		"blacklist_relative_path": &cfg.BlacklistRelativePath,
		"log_path":                &cfg.LogPath,
		"log_format":              &cfg.LogFormat,
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := parameterRegexp.FindStringSubmatch(line)
		if match == nil {
			return apperrors.NewConfigSyntaxError(fmt.Sprintf(
				"line %d: expected PARAMETER=VALUE, got %q", lineNo, line))
		}

		field, ok := fields[match[1]]
		if !ok {
			return apperrors.NewUnknownParameterError(fmt.Sprintf(
				"line %d: unknown parameter %q, valid parameters are: %s",
				lineNo, match[1], strings.Join(ValidParameters, ", ")))
		}
		*field = match[2]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}
	return nil
}

func decodeTOML(content []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return apperrors.NewUnknownParameterError(strictErr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return apperrors.NewConfigSyntaxError(fmt.Sprintf("line %d, column %d: %s", row, col, derr.Error()))
		}
		return apperrors.NewConfigSyntaxError(err.Error())
	}
	return nil
}

func decodeYAML(content []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			for _, msg := range typeErr.Errors {
				if strings.Contains(msg, "not found in type") {
					return apperrors.NewUnknownParameterError(msg)
				}
			}
		}
		return apperrors.NewConfigSyntaxError(err.Error())
	}
	return nil
}

// SerializeConfig renders the configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
