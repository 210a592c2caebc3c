package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/simplecolor/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "simplecolor.toml", `
chat_parsing_enabled = false
chat_format = "<{player}> {message}"

[subjects]
vip = ["simplecolor.color.*", "simplecolor.format.bold"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.ChatParsingEnabled)
	assert.Equal(t, "<{player}> {message}", cfg.ChatFormat)
	assert.Equal(t, []string{"vip"}, cfg.SubjectNames())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "simplecolor.toml", `chat_format = "{message}"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.ChatParsingEnabled)
	assert.Equal(t, "{message}", cfg.ChatFormat)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"chatParsingEnabled": true, "chatFormat": "[{player}] {message}"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "[{player}] {message}", cfg.ChatFormat)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
chat_parsing_enabled: false
subjects:
  mod:
    - simplecolor.bypass
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.ChatParsingEnabled)
	assert.Equal(t, DefaultChatFormat, cfg.ChatFormat)

	caps, ok := cfg.Subject("mod")
	require.True(t, ok)
	assert.True(t, markup.Gate(caps).Allowed(markup.RainbowCapability))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "config.ini", "x=1"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Load(writeFile(t, "config.json", "{"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "config.toml", `chat_format = "  "`))
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "chat_format", verrs[0].Field)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SIMPLECOLOR_CHAT_PARSING", "false")
	t.Setenv("SIMPLECOLOR_CHAT_FORMAT", "{player} > {message}")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.False(t, cfg.ChatParsingEnabled)
	assert.Equal(t, "{player} > {message}", cfg.ChatFormat)

	t.Setenv("SIMPLECOLOR_CHAT_PARSING", "maybe")
	cfg = Default()
	cfg.ApplyEnvOverrides()
	assert.True(t, cfg.ChatParsingEnabled)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Subjects = map[string][]string{"vip": {"simplecolor.color.red", " "}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "subjects.vip: capability must not be empty", err.Error())

	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"a.toml", "b.json", "c.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := &Config{
				ChatParsingEnabled: false,
				ChatFormat:         "{player}: {message}",
				Subjects:           map[string][]string{"vip": {"simplecolor.hex"}},
			}
			require.NoError(t, cfg.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}

	err := Default().Save(filepath.Join(t.TempDir(), "x.xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestSubject(t *testing.T) {
	cfg := Default()
	cfg.Subjects = map[string][]string{"vip": {"simplecolor.color.*"}}

	caps, ok := cfg.Subject("vip")
	require.True(t, ok)
	assert.True(t, caps.HasPermission("simplecolor.color.*"))

	_, ok = cfg.Subject("nobody")
	assert.False(t, ok)
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "simplecolor.toml", `chat_format = "{message}"`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			if err != nil {
				return
			}
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// keep writing until the watcher has registered and picked a write up
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		require.NoError(t, os.WriteFile(path, []byte(`chat_format = "* {player} {message}"`), 0o644))
		select {
		case cfg := <-reloaded:
			// a reload can catch the file mid-write
			if cfg.ChatFormat != "* {player} {message}" {
				continue
			}
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
