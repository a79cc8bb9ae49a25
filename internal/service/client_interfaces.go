package service

import (
	"context"

	"github.com/neverov-dev/passvault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/synchronizer_mock.go -package=mock

// View is a point-in-time snapshot of the vault state published to the UI.
// It is a value copy: the UI can hold it across frames without racing the
// synchronizer.
type View struct {
	// Items is the decrypted collection in server-returned order. Never nil.
	Items []models.VaultRecord

	// Loading reports whether a refresh is currently in flight.
	Loading bool

	// Err is the last transport error, or nil. A set Err never implies the
	// items are gone: a failed refresh keeps the previous collection.
	Err error
}

// Synchronizer owns the in-memory collection of decrypted vault records for
// the lifetime of an authenticated session. Every mutation goes through the
// remote store and the cipher codec; after each successful write the whole
// collection is re-fetched so the visible state always converges to server
// truth (refresh-after-write, never optimistic patching).
//
// It is created on session start and dropped on sign-out; nothing about it
// is a process-wide singleton.
type Synchronizer interface {
	// Snapshot returns a copy of the current view.
	Snapshot() View

	// Refresh fetches all envelopes for the current identity, decrypts each
	// one, drops any that cannot be decrypted (logged, not propagated), and
	// atomically replaces the visible collection with the recovered set.
	// On a transport failure the previous collection stays in place, the
	// view's Err is set, and the error is returned.
	Refresh(ctx context.Context) error

	// Add encrypts record, creates an envelope on the server, and refreshes
	// on success. The collection is not touched on failure; the server
	// remains the only source of ids and timestamps.
	Add(ctx context.Context, record models.VaultRecord) error

	// Update encrypts record and replaces the envelope identified by id,
	// then refreshes on success. Returns an error wrapping
	// [adapter.ErrNotFound] when the server holds no such envelope for the
	// current identity.
	Update(ctx context.Context, id string, record models.VaultRecord) error

	// Delete removes the envelope identified by id and refreshes on
	// success. NotFound semantics match Update.
	Delete(ctx context.Context, id string) error

	// Filter returns the records whose title, username, url, or notes
	// contain query case-insensitively, preserving collection order. It is
	// a pure read-side projection and never mutates the collection. An
	// empty query returns everything.
	Filter(query string) []models.VaultRecord

	// Subscribe registers fn to be called with a fresh snapshot after every
	// state change. Intended for the reactive UI layer.
	Subscribe(fn func(View))
}
