// Package chat applies the configured chat template to player messages.
package chat

import (
	"strings"
	"sync"

	"github.com/jmoiron/simplecolor/internal/config"
	"github.com/jmoiron/simplecolor/markup"
)

const (
	playerToken  = "{player}"
	messageToken = "{message}"
)

// Formatter renders chat lines. The config can be swapped while the
// formatter is in use, eg. from a config watcher.
type Formatter struct {
	mu  sync.RWMutex
	cfg *config.Config
}

// NewFormatter returns a Formatter using cfg, or the defaults if cfg is nil.
func NewFormatter(cfg *config.Config) *Formatter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Formatter{cfg: cfg}
}

// SetConfig replaces the config used for subsequent lines.
func (f *Formatter) SetConfig(cfg *config.Config) {
	f.mu.Lock()
	f.cfg = cfg
	f.mu.Unlock()
}

// Config returns the config currently in use.
func (f *Formatter) Config() *config.Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

// Format builds the chat line for a player's message. It returns false when
// chat parsing is disabled, in which case the message should be left alone.
//
// The template around {message} is trusted and parsed with every capability;
// the content is parsed with the sender's. A template without {message}
// is parsed whole and the content is dropped.
func (f *Formatter) Format(player, content string, sender markup.Checker) (markup.Message, bool) {
	cfg := f.Config()
	if !cfg.ChatParsingEnabled {
		return markup.Message{}, false
	}
	if sender == nil {
		sender = markup.AllowAll
	}

	tmpl := cfg.ChatFormat
	prefix, suffix, ok := strings.Cut(tmpl, messageToken)
	if !ok {
		return markup.Parse(strings.ReplaceAll(tmpl, playerToken, player), nil), true
	}

	head := markup.Parse(strings.ReplaceAll(prefix, playerToken, player), nil)
	body := markup.Parse(content, sender)
	tail := markup.Parse(strings.ReplaceAll(suffix, playerToken, player), nil)
	return head.Concat(body).Concat(tail), true
}
