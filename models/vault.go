package models

import (
	"errors"
	"time"
)

// ErrTitleRequired is returned by [VaultRecord.Validate] when the title
// field is empty. Title is the only mandatory field of a record.
var ErrTitleRequired = errors.New("vault record title is required")

// VaultRecord is the decrypted, in-memory representation of a single
// credential entry. It exists only on the client: before a record crosses
// any process boundary it is serialized and encrypted into
// [VaultEnvelope.Ciphertext].
//
// ID is assigned by the server when the envelope is first stored and is
// immutable afterwards. It travels on the envelope, not inside the
// ciphertext, so it carries no json tag mapping for the encrypted payload.
type VaultRecord struct {
	// ID is the server-assigned envelope identifier. Empty for drafts that
	// have not been stored yet.
	ID string `json:"-"`

	// Title is the human-readable name of the entry. Required.
	Title string `json:"title"`

	// Username is the login identifier for the stored credential.
	Username string `json:"username"`

	// Password is the secret credential value.
	Password string `json:"password"`

	// URL is the resource the credential applies to.
	URL string `json:"url"`

	// Notes contains free-form user notes.
	Notes string `json:"notes"`
}

// Validate checks the record invariants. Only Title is mandatory; every
// other field defaults to the empty string.
func (r VaultRecord) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

// Ciphertext is a string alias representing encrypted vault content.
// The structure and meaning of the data are unknown to everything except
// the cipher codec holding the correct key; the server and the database
// treat it as opaque.
type Ciphertext string

// VaultEnvelope is the storage- and wire-facing representation of a vault
// record. The server never observes anything but this shape: identifier,
// opaque ciphertext, and the timestamps it maintains itself.
type VaultEnvelope struct {
	// ID is the unique identifier of the envelope, assigned by the server
	// on creation.
	ID string `json:"id"`

	// Ciphertext holds the encrypted record. Opaque to the server.
	Ciphertext Ciphertext `json:"ciphertext"`

	// CreatedAt is set by the storage layer when the envelope is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the storage layer on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table backing VaultEnvelope.
func (e VaultEnvelope) TableName() string {
	return "vault_items"
}
