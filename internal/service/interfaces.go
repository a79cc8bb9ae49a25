package service

import (
	"context"

	"github.com/neverov-dev/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService handles user registration, credential verification and the JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService exposes envelope CRUD for authenticated users. Envelope
// contents are opaque ciphertext; the service validates shape only and never
// interprets the payload.
type VaultService interface {
	ListEnvelopes(ctx context.Context, userID int64) ([]models.VaultEnvelope, error)
	CreateEnvelope(ctx context.Context, userID int64, ciphertext models.Ciphertext) (models.VaultEnvelope, error)
	UpdateEnvelope(ctx context.Context, userID int64, envelopeID string, ciphertext models.Ciphertext) (models.VaultEnvelope, error)
	DeleteEnvelope(ctx context.Context, userID int64, envelopeID string) error
}
