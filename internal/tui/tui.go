// Package tui implements the interactive terminal client: authentication
// flow, vault listing with filter-as-you-type, record forms, and the secret
// generator. It is a thin presentation layer over [service.ClientServices];
// all encryption and server communication happens below it.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// LoginFlow runs the pre-session program: welcome, login and register
// screens. On success the transport adapter already holds the bearer token.
// Returns [ErrUserQuit] when the user leaves without authenticating.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if !result.authenticated {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the session program: list, detail, form and generator
// screens. Background refreshes land in the UI through the synchronizer
// subscription, so changes made on other devices appear without a keypress.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.services.Vault.Subscribe(func(v service.View) {
		program.Send(viewMsg{view: v})
	})

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
