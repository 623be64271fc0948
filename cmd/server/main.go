package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/courtside/ledger/infra"
	infraledger "github.com/courtside/ledger/infra/repository/ledger"
	"github.com/courtside/ledger/pkg/app"
	"github.com/courtside/ledger/pkg/config"
	"github.com/courtside/ledger/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	deps := &app.Deps{
		Ledger: infraledger.New(db),
		Logger: logger,
	}
	application := app.New(deps, cfg)

	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
