package store

import (
	"context"

	"github.com/neverov-dev/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// EnvelopeRepository is the data-access layer for encrypted vault envelopes.
// Every method is scoped by the owning user: an envelope belonging to another
// user behaves exactly as if it did not exist.
type EnvelopeRepository interface {
	ListEnvelopes(ctx context.Context, userID int64) ([]models.VaultEnvelope, error)
	CreateEnvelope(ctx context.Context, userID int64, ciphertext models.Ciphertext) (models.VaultEnvelope, error)
	UpdateEnvelope(ctx context.Context, userID int64, envelopeID string, ciphertext models.Ciphertext) (models.VaultEnvelope, error)
	DeleteEnvelope(ctx context.Context, userID int64, envelopeID string) error
}
