package app

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"
	"github.com/jmoiron/simplecolor/internal/app/mcformat"
	"github.com/jmoiron/simplecolor/internal/chat"
	"github.com/jmoiron/simplecolor/markup"
)

type App struct {
	Chat    *chat.Formatter
	Verbose int
	tpl     *template.Template
}

//go:embed templates/*.gohtml static/*
var templatesFS embed.FS

var errUnknownSubject = errors.New("unknown subject")

func New(f *chat.Formatter, verbose int) (*App, error) {
	if f == nil {
		f = chat.NewFormatter(nil)
	}
	a := &App{Chat: f, Verbose: verbose}

	sub, _ := fs.Sub(templatesFS, "templates")
	sh := sprout.New(sprout.WithRegistries(sproutstrings.NewRegistry()))
	funcs := sh.Build()
	funcs["eq"] = func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) }
	funcs["mc"] = func(s string) template.HTML { return mcformat.Format(s) }
	funcs["message"] = func(m markup.Message) template.HTML { return mcformat.HTML(m) }
	funcs["swatch"] = func(c markup.RGB) template.CSS { return template.CSS("background:" + c.String()) }
	tpl, err := template.New("base").Funcs(funcs).ParseFS(sub, "*.gohtml")
	if err != nil {
		return nil, err
	}
	a.tpl = tpl
	return a, nil
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if a.Verbose > 0 {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	mime.AddExtensionType(".css", "text/css")
	staticFS, _ := fs.Sub(templatesFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", a.index)
	r.Get("/colors/", a.colors)
	r.Get("/subjects/{subject}", a.subject)

	r.Route("/api", func(r chi.Router) {
		r.Post("/parse", a.apiParse)
		r.Post("/strip", a.apiStrip)
		r.Post("/chat", a.apiChat)
	})

	return r
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// baseData returns the template data shared by every page.
func (a *App) baseData(r *http.Request, title string) map[string]any {
	// ?dark=true forces dark mode for this render, otherwise the cookie
	// set by the client toggle decides.
	themeDark := false
	if v := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("dark"))); v != "" {
		if v == "1" || v == "true" || v == "t" || v == "yes" || v == "on" {
			themeDark = true
		}
	} else if c, err := r.Cookie("theme"); err == nil && c != nil && c.Value == "dark" {
		themeDark = true
	}
	cfg := a.Chat.Config()
	return map[string]any{
		"Title":       title,
		"Subjects":    cfg.SubjectNames(),
		"ChatEnabled": cfg.ChatParsingEnabled,
		"ChatFormat":  cfg.ChatFormat,
		"ThemeDark":   themeDark,
	}
}

// checker resolves the permissions a request renders with. No subject means
// trusted text; a named subject must exist in the config.
func (a *App) checker(subject string) (markup.Checker, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return markup.AllowAll, nil
	}
	caps, ok := a.Chat.Config().Subject(subject)
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnknownSubject, subject)
	}
	return markup.Gate(caps), nil
}

// index handles GET "/" and previews the text in ?text= as ?as= would see it.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	as := strings.TrimSpace(r.URL.Query().Get("as"))

	check, err := a.checker(as)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	msg := markup.Parse(text, check)

	data := a.baseData(r, "simplecolor")
	data["Form"] = map[string]any{"text": text, "as": as}
	data["Message"] = msg
	data["Plain"] = msg.Plain()
	data["Segments"] = mcformat.Segments(msg)
	a.render(w, "index.gohtml", data)
}

type capabilityRow struct {
	ID      string
	Label   string
	Allowed bool
}

func specialCapabilities() []capabilityRow {
	return []capabilityRow{
		{ID: markup.HexCapability, Label: "hex colors"},
		{ID: markup.GradientCapability, Label: "gradients"},
		{ID: markup.RainbowCapability, Label: "rainbow"},
		{ID: markup.LinkCapability, Label: "links"},
		{ID: markup.AllColors, Label: "every color"},
		{ID: markup.AllFormats, Label: "every format"},
		{ID: markup.Bypass, Label: "everything"},
	}
}

// colors handles GET "/colors/" and lists every color, format and capability.
func (a *App) colors(w http.ResponseWriter, r *http.Request) {
	data := a.baseData(r, "Colors")
	data["Colors"] = markup.Colors()
	data["Formats"] = markup.Formats()
	data["Special"] = specialCapabilities()
	a.render(w, "colors.gohtml", data)
}

// subject handles GET "/subjects/{subject}" and shows what a subject may use.
func (a *App) subject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "subject")
	caps, ok := a.Chat.Config().Subject(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	check := markup.Gate(caps)

	var rows []capabilityRow
	for _, c := range markup.Colors() {
		rows = append(rows, capabilityRow{ID: c.Capability(), Label: c.Name, Allowed: check.Allowed(c.Capability())})
	}
	for _, f := range markup.Formats() {
		rows = append(rows, capabilityRow{ID: f.Capability(), Label: f.Name(), Allowed: check.Allowed(f.Capability())})
	}
	for _, row := range specialCapabilities()[:4] {
		row.Allowed = check.Allowed(row.ID)
		rows = append(rows, row)
	}

	data := a.baseData(r, "Subject: "+name)
	data["Subject"] = name
	data["Rows"] = rows
	a.render(w, "subject.gohtml", data)
}
