package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"xivpath/internal/catalog"
	"xivpath/internal/config"
	"xivpath/internal/logging"
	"xivpath/internal/session"
	"xivpath/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML or TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cat, err := catalog.Load(cfg.Data.Dir)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.String("dir", cfg.Data.Dir), zap.Int("files", cat.Files()))

	tmpl, err := web.ParseTemplates(cfg.Templates.Dir)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	var store session.Store = session.NopStore{}
	if cfg.Session.Remember {
		store = session.NewCookieStore(cfg.Session.CookiePrefix, cfg.Session.MaxAge, cfg.Session.Secure)
	}

	srv := &web.Server{
		Catalog: cat,
		Store:   store,
		Tmpl:    tmpl,
		Log:     log,
		HelpURL: cfg.Links.Help,
	}
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("remember", cfg.Session.Remember))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
