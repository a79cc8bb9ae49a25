package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/neverov-dev/passvault/internal/config"
	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/tui"
	"github.com/neverov-dev/passvault/internal/workers"
)

// App is the client application: it owns the login/session cycle and the
// background refresh job.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app: nil dependency")
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: log}, nil
}

// Run blocks until the user exits. On sign-out the session state is dropped
// and the login flow starts over; quitting from any screen ends the process.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.services.StartSession(a.cfg.App.VaultKey)

		if err := a.services.Vault.Refresh(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial vault refresh failed, showing cached state")
		}

		job := workers.NewRefreshJob(a.services.Vault, a.cfg.Workers.RefreshInterval, a.logger)
		job.Start(ctx)

		logout, err := a.ui.MainLoop(ctx)

		job.Stop()
		a.services.EndSession()

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}
