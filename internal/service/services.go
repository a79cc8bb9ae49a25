package service

import (
	"github.com/neverov-dev/passvault/internal/config"
	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/store"
)

// Services bundles the server-side business-logic layer.
type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

// NewServices wires all services over the given storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		VaultService: NewVaultService(storages.EnvelopeRepository, logger),
	}
}
