package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"net/http"

	"github.com/jmoiron/simplecolor/internal/app"
	"github.com/jmoiron/simplecolor/internal/app/mcformat"
	"github.com/jmoiron/simplecolor/internal/chat"
	"github.com/jmoiron/simplecolor/internal/config"
	"github.com/jmoiron/simplecolor/markup"
	flag "github.com/spf13/pflag"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	var (
		listen      string
		configPath  string
		serve       bool
		watch       bool
		as          string
		output      string
		strip       bool
		legacy      bool
		player      string
		showVersion bool
		verbose     int
	)

	flag.StringVar(&listen, "addr", "127.0.0.1:8222", "listen address for the preview server (host:port)")
	flag.StringVarP(&configPath, "config", "c", "simplecolor.toml", "config file (.toml, .json or .yaml)")
	flag.BoolVar(&serve, "serve", false, "run the web preview server")
	flag.BoolVar(&watch, "watch", false, "reload the config file when it changes (with --serve)")
	flag.StringVar(&as, "as", "", "render with the permissions of a configured subject")
	flag.StringVarP(&output, "format", "f", "ansi", "output: "+strings.Join(mcformat.Outputs, ", "))
	flag.BoolVar(&strip, "strip", false, "print the input with all markup removed")
	flag.BoolVar(&legacy, "legacy", false, "with --strip, only remove legacy color and format codes")
	flag.StringVarP(&player, "player", "p", "", "format the input as a chat message from this player")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.CountVarP(&verbose, "verbose", "v", "increase verbosity; repeat for more detail")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: simplecolor [options] [text...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders color markup like \"&cred &#ff8800orange &*rainbow\".\n")
		fmt.Fprintf(os.Stderr, "Text is read from stdin when no arguments are given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelWarn
	switch {
	case verbose > 1:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slog.Debug("config loaded", "path", configPath, "subjects", len(cfg.Subjects),
		"chat_parsing", cfg.ChatParsingEnabled)
	formatter := chat.NewFormatter(cfg)

	if serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runServer(ctx, listen, configPath, watch, formatter, verbose); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	text, err := inputText(flag.Args(), os.Stdin)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	if strip {
		if legacy {
			fmt.Println(markup.StripLegacy(text))
		} else {
			fmt.Println(markup.StripAll(text))
		}
		return
	}

	check := markup.AllowAll
	if as != "" {
		caps, ok := cfg.Subject(as)
		if !ok {
			log.Fatalf("unknown subject %q", as)
		}
		check = markup.Gate(caps)
	}

	var msg markup.Message
	if player != "" {
		m, ok := formatter.Format(player, text, check)
		if !ok {
			// chat parsing is off; the line goes out untouched
			fmt.Println(text)
			return
		}
		msg = m
	} else {
		msg = markup.Parse(text, check)
	}

	out, err := mcformat.Render(msg, output, nil)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Println(out)
}

// inputText joins the arguments, or reads r if there are none.
func inputText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func runServer(ctx context.Context, listen, configPath string, watch bool, f *chat.Formatter, verbose int) error {
	a, err := app.New(f, verbose)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if watch {
		go func() {
			err := config.Watch(ctx, configPath, func(cfg *config.Config, err error) {
				if err != nil {
					slog.Warn("config reload failed; keeping previous", "error", err)
					return
				}
				a.Chat.SetConfig(cfg)
				slog.Info("config reloaded", "path", configPath)
			})
			if err != nil {
				slog.Error("config watch", "error", err)
			}
		}()
	}
	log.Printf("simplecolor %s listening on http://%s", version, listen)
	return httpListenAndServe(ctx, listen, a.Router())
}

// httpListenAndServe exists to facilitate testing/mocking if desired.
var httpListenAndServe = serveHTTP

// serveHTTP serves h on addr until ctx is done, then shuts down gracefully.
func serveHTTP(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	slog.Info("shutting down server", "addr", addr)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
