// Package adapter provides the transport layer for communicating with the
// passvault server.
//
// The primary abstraction is [VaultServer], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultServer]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/neverov-dev/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_server_mock.go -package=mock

// VaultServer defines transport-agnostic communication with the passvault
// server. Every envelope operation is scoped server-side by the identity
// established at Login; the client never passes raw user IDs around.
//
// Implementations are responsible for serialization, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type VaultServer interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the given credentials. On success
	// the returned bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success the returned bearer token is
	// stored via SetToken.
	Login(ctx context.Context, user models.User) error

	// ListEnvelopes fetches every envelope owned by the current identity.
	// The result is ciphertext-only; decryption is the caller's concern.
	ListEnvelopes(ctx context.Context) ([]models.VaultEnvelope, error)

	// CreateEnvelope stores a new envelope carrying only ciphertext and
	// returns the stored envelope with its server-assigned id and
	// timestamps.
	CreateEnvelope(ctx context.Context, ciphertext models.Ciphertext) (models.VaultEnvelope, error)

	// UpdateEnvelope replaces the ciphertext of the envelope identified by
	// id, provided it is owned by the current identity. Returns an error
	// wrapping [ErrNotFound] when no such envelope exists for this identity.
	UpdateEnvelope(ctx context.Context, id string, ciphertext models.Ciphertext) (models.VaultEnvelope, error)

	// DeleteEnvelope removes the envelope identified by id, provided it is
	// owned by the current identity. Returns an error wrapping [ErrNotFound]
	// when no such envelope exists for this identity.
	DeleteEnvelope(ctx context.Context, id string) error
}
