package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/kvadmin/internal/config"
	"github.com/danmuck/kvadmin/internal/console"
	"github.com/danmuck/kvadmin/internal/observability"
	"github.com/danmuck/kvadmin/internal/store"
	"github.com/danmuck/kvadmin/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to console config (toml)")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := loadConsoleConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "kvadmin: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := observability.InitLogger(cfg.Name)

	st := store.New()
	for key, value := range cfg.Store.Seed {
		st.Set(key, value)
	}

	cons, err := console.New(st, console.Options{
		ExcludedCommands: cfg.ExcludedCommands,
		RemappedCommands: cfg.RemappedCommands,
		Before:           web.AuditBefore(logger),
		After:            web.AuditAfter(logger),
	})
	if err != nil {
		// A bad remap table must surface before any request is served.
		logger.Fatal().Err(err).Msg("console_init_failed")
	}

	srv := web.New(web.Config{
		Name:        cfg.Name,
		Addr:        cfg.Addr,
		BasePath:    cfg.BasePath,
		CorsOrigins: cfg.CorsOrigins,
		AuthToken:   cfg.AuthToken,
	}, cons)
	srv.RegisterRoutes()

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("kvadmin_serve_failed")
	}
}
