// Package app wires configuration, infrastructure, and services into the
// running application.
package app

import (
	"log/slog"

	"github.com/courtside/ledger/pkg/config"
	ledgerrepo "github.com/courtside/ledger/pkg/repository/ledger"
	"github.com/courtside/ledger/pkg/service/auth"
	"github.com/courtside/ledger/pkg/service/report"
)

// Deps holds the infrastructure dependencies services are built from.
type Deps struct {
	Ledger ledgerrepo.Repository
	Logger *slog.Logger
}

// App aggregates the constructed services and their configuration.
type App struct {
	Deps          *Deps
	Config        *config.App
	AuthService   *auth.Service
	ReportService *report.Service
}

// New builds the application from its dependencies.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:          deps,
		Config:        cfg,
		AuthService:   auth.New(deps.Logger),
		ReportService: report.New(deps.Ledger, deps.Logger),
	}
}
