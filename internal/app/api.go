package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmoiron/simplecolor/internal/app/mcformat"
	"github.com/jmoiron/simplecolor/markup"
	"github.com/muesli/termenv"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]any{"ok": false, "error": msg})
}

// requestChecker resolves the permissions for an API body. An explicit
// "caps" list takes precedence over a named subject in "as".
func (a *App) requestChecker(m M) (markup.Checker, error) {
	if m.Has("caps") {
		return markup.Gate(markup.NewCapabilities(m.GetStrings("caps")...)), nil
	}
	return a.checker(m.GetString("as"))
}

// ansiRenderer writes truecolor escapes regardless of where the server's
// own stdout points.
func ansiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// apiParse handles POST /api/parse.
func (a *App) apiParse(w http.ResponseWriter, r *http.Request) {
	m, err := decodeM(w, r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	check, err := a.requestChecker(m)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg := markup.Parse(m.GetString("text"), check)
	resp := map[string]any{
		"ok":       true,
		"plain":    msg.Plain(),
		"html":     string(mcformat.HTML(msg)),
		"segments": mcformat.Segments(msg),
	}
	if format := m.GetString("format"); format != "" {
		out, err := mcformat.Render(msg, format, ansiRenderer())
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp["output"] = out
	}
	slog.Debug("parse", "as", m.GetString("as"), "segments", msg.Len())
	writeJSON(w, http.StatusOK, resp)
}

// apiStrip handles POST /api/strip.
func (a *App) apiStrip(w http.ResponseWriter, r *http.Request) {
	m, err := decodeM(w, r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	text := m.GetString("text")
	if m.GetBool("legacy") {
		text = markup.StripLegacy(text)
	} else {
		text = markup.StripAll(text)
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "text": text})
}

// apiChat handles POST /api/chat and formats a line with the chat template.
func (a *App) apiChat(w http.ResponseWriter, r *http.Request) {
	m, err := decodeM(w, r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	check, err := a.requestChecker(m)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	player, content := m.GetString("player"), m.GetString("message")
	msg, ok := a.Chat.Format(player, content, check)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "enabled": false, "text": content})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"enabled":  true,
		"plain":    msg.Plain(),
		"html":     string(mcformat.HTML(msg)),
		"segments": mcformat.Segments(msg),
	})
}
