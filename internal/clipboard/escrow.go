// Package clipboard implements the transient copy side-channel for secrets.
// Copied values are handed to the system clipboard with a bounded-time
// auto-clear safeguard so that a password does not linger there forever.
package clipboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/neverov-dev/passvault/internal/logger"
)

// ErrClipboardUnavailable is returned when the system clipboard cannot be
// written to (no permission, unsupported environment). No deferred clear is
// scheduled in that case.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// DefaultTTL is how long a copied secret stays on the clipboard before the
// auto-clear check runs.
const DefaultTTL = 15 * time.Second

// Escrow writes secrets to the shared system clipboard and clears them
// after a TTL, unless the user has copied something else in the meantime.
//
// The read/write functions are injectable so tests can substitute an
// in-memory clipboard; production code uses atotto/clipboard.
type Escrow struct {
	write func(string) error
	read  func() (string, error)
	log   *logger.Logger
}

// NewEscrow constructs an [Escrow] backed by the system clipboard.
func NewEscrow(log *logger.Logger) *Escrow {
	return &Escrow{
		write: clipboard.WriteAll,
		read:  clipboard.ReadAll,
		log:   log,
	}
}

// NewEscrowWithBackend constructs an [Escrow] with custom read/write
// functions. Used in tests and on platforms with a non-standard clipboard.
func NewEscrowWithBackend(write func(string) error, read func() (string, error), log *logger.Logger) *Escrow {
	return &Escrow{write: write, read: read, log: log}
}

// CopyWithAutoClear writes text to the clipboard and schedules a deferred
// check after ttl: if the clipboard still holds exactly text at that time it
// is cleared, otherwise it is left alone — the user may have copied
// something else meanwhile, and clobbering that would be a surprising side
// effect.
//
// The deferred task is fire-and-forget with no cancellation handle; a later
// explicit copy naturally supersedes it via the still-equals-text guard.
// When ttl <= 0, [DefaultTTL] is used.
//
// Returns an error wrapping [ErrClipboardUnavailable] if the write fails;
// no deferred task is issued then.
func (e *Escrow) CopyWithAutoClear(text string, ttl time.Duration) error {
	if err := e.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	go func() {
		time.Sleep(ttl)

		current, err := e.read()
		if err != nil {
			e.log.Warn().Err(err).Msg("clipboard auto-clear: read failed, leaving contents alone")
			return
		}
		if current != text {
			return
		}
		if err := e.write(""); err != nil {
			e.log.Warn().Err(err).Msg("clipboard auto-clear: clear failed")
		}
	}()

	return nil
}
