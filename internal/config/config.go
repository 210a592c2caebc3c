// Package config loads and saves the chat formatting settings.
//
// The file format follows the extension: .toml, .json or .yaml/.yml. A
// missing file is not an error; the defaults are used instead. Environment
// variables override whatever the file says:
//
//	SIMPLECOLOR_CHAT_PARSING  true/false
//	SIMPLECOLOR_CHAT_FORMAT   template with {player} and {message}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jmoiron/simplecolor/markup"
	"gopkg.in/yaml.v2"
)

// DefaultChatFormat is used when no template is configured.
const DefaultChatFormat = "{player}: {message}"

// ErrUnknownFormat is returned for a config path with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds the chat settings and the named permission subjects.
type Config struct {
	// ChatParsingEnabled turns markup parsing of chat on or off.
	ChatParsingEnabled bool `toml:"chat_parsing_enabled" json:"chatParsingEnabled" yaml:"chat_parsing_enabled"`
	// ChatFormat is the chat line template; {player} and {message} are
	// substituted.
	ChatFormat string `toml:"chat_format" json:"chatFormat" yaml:"chat_format"`
	// Subjects maps a subject name (a player or group) to the capability ids
	// it holds, eg. "simplecolor.color.*".
	Subjects map[string][]string `toml:"subjects,omitempty" json:"subjects,omitempty" yaml:"subjects,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ChatParsingEnabled: true,
		ChatFormat:         DefaultChatFormat,
	}
}

// Load reads the config at path, falling back to defaults if it does not
// exist, then applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: %s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to path in the format chosen by its extension, creating
// the parent directory if needed.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config: %s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies SIMPLECOLOR_* environment variables. Values that
// do not parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SIMPLECOLOR_CHAT_PARSING"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.ChatParsingEnabled = enabled
		}
	}
	if v := os.Getenv("SIMPLECOLOR_CHAT_FORMAT"); v != "" {
		c.ChatFormat = v
	}
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the template and subject definitions.
func (c *Config) Validate() error {
	var errs ValidateErrors
	if strings.TrimSpace(c.ChatFormat) == "" {
		errs = append(errs, ValidationError{"chat_format", "must not be empty"})
	}
	for _, name := range c.SubjectNames() {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{"subjects", "subject name must not be empty"})
		}
		for _, id := range c.Subjects[name] {
			if strings.TrimSpace(id) == "" {
				errs = append(errs, ValidationError{"subjects." + name, "capability must not be empty"})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubjectNames returns the configured subject names, sorted.
func (c *Config) SubjectNames() []string {
	names := make([]string, 0, len(c.Subjects))
	for name := range c.Subjects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subject returns the capabilities held by a configured subject.
func (c *Config) Subject(name string) (markup.Capabilities, bool) {
	ids, ok := c.Subjects[name]
	if !ok {
		return nil, false
	}
	return markup.NewCapabilities(ids...), true
}
