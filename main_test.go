package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestInputText(t *testing.T) {
	got, err := inputText([]string{"&cHello", "world"}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "&cHello world" {
		t.Errorf("args: got %q", got)
	}

	got, err = inputText(nil, strings.NewReader("&aline\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "&aline" {
		t.Errorf("stdin: got %q", got)
	}
}

func TestRunServer(t *testing.T) {
	orig := httpListenAndServe
	defer func() { httpListenAndServe = orig }()

	var addr string
	var handler http.Handler
	httpListenAndServe = func(_ context.Context, a string, h http.Handler) error {
		addr, handler = a, h
		return nil
	}
	if err := runServer(context.Background(), "127.0.0.1:0", "missing.toml", false, nil, 0); err != nil {
		t.Fatal(err)
	}
	if addr != "127.0.0.1:0" || handler == nil {
		t.Fatalf("server not started: addr=%q handler=%v", addr, handler)
	}
}

func TestServeHTTPShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, "127.0.0.1:0", http.NotFoundHandler()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serveHTTP after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
