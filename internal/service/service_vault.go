package service

import (
	"context"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/store"
	"github.com/neverov-dev/passvault/models"
)

// vaultService is the concrete implementation of VaultService. It enforces
// shape-level validation (non-empty ciphertext and envelope id) and delegates
// persistence to the EnvelopeRepository. Scoping by user is handled by the
// repository: a foreign envelope id yields store.ErrEnvelopeNotFound.
type vaultService struct {
	envelopeRepository store.EnvelopeRepository

	logger *logger.Logger
}

// NewVaultService constructs a VaultService backed by the given repository.
func NewVaultService(envelopeRepository store.EnvelopeRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		envelopeRepository: envelopeRepository,
		logger:             logger,
	}
}

func (v *vaultService) ListEnvelopes(ctx context.Context, userID int64) ([]models.VaultEnvelope, error) {
	return v.envelopeRepository.ListEnvelopes(ctx, userID)
}

func (v *vaultService) CreateEnvelope(ctx context.Context, userID int64, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	if ciphertext == "" {
		return models.VaultEnvelope{}, ErrEmptyCiphertext
	}

	return v.envelopeRepository.CreateEnvelope(ctx, userID, ciphertext)
}

func (v *vaultService) UpdateEnvelope(ctx context.Context, userID int64, envelopeID string, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	if envelopeID == "" {
		return models.VaultEnvelope{}, ErrEmptyEnvelopeID
	}
	if ciphertext == "" {
		return models.VaultEnvelope{}, ErrEmptyCiphertext
	}

	return v.envelopeRepository.UpdateEnvelope(ctx, userID, envelopeID, ciphertext)
}

func (v *vaultService) DeleteEnvelope(ctx context.Context, userID int64, envelopeID string) error {
	if envelopeID == "" {
		return ErrEmptyEnvelopeID
	}

	return v.envelopeRepository.DeleteEnvelope(ctx, userID, envelopeID)
}
