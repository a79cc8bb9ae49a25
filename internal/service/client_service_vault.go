package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/neverov-dev/passvault/internal/adapter"
	"github.com/neverov-dev/passvault/internal/crypto"
	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/models"
)

type vaultSynchronizer struct {
	server adapter.VaultServer
	codec  crypto.Codec
	key    string
	logger *logger.Logger

	mu        sync.RWMutex
	items     []models.VaultRecord
	loading   bool
	err       error
	observers []func(View)
}

// NewSynchronizer constructs a [Synchronizer] for one authenticated session.
// key is the opaque vault encryption key for that session; the synchronizer
// hands it to the codec unchanged and never persists it.
func NewSynchronizer(server adapter.VaultServer, codec crypto.Codec, key string, log *logger.Logger) Synchronizer {
	return &vaultSynchronizer{
		server: server,
		codec:  codec,
		key:    key,
		logger: log,
		items:  []models.VaultRecord{},
	}
}

func (s *vaultSynchronizer) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a copy of the state. Callers must hold s.mu.
func (s *vaultSynchronizer) snapshotLocked() View {
	items := make([]models.VaultRecord, len(s.items))
	copy(items, s.items)
	return View{Items: items, Loading: s.loading, Err: s.err}
}

func (s *vaultSynchronizer) Refresh(ctx context.Context) error {
	s.setLoading(true)

	envelopes, err := s.server.ListEnvelopes(ctx)
	if err != nil {
		// Keep the previous items: losing visibility into existing secrets
		// over a transient network fault is not acceptable.
		s.mu.Lock()
		s.loading = false
		s.err = err
		view := s.snapshotLocked()
		s.mu.Unlock()
		s.publish(view)
		return fmt.Errorf("list envelopes: %w", err)
	}

	decrypted := make([]models.VaultRecord, 0, len(envelopes))
	for _, env := range envelopes {
		record, decErr := s.codec.Decrypt(env.Ciphertext, s.key)
		if decErr != nil {
			// One corrupted record must not hide the rest of the vault.
			s.logger.Warn().
				Err(decErr).
				Str("envelope_id", env.ID).
				Msg("dropping undecryptable envelope from vault view")
			continue
		}
		record.ID = env.ID
		decrypted = append(decrypted, record)
	}

	s.mu.Lock()
	s.items = decrypted
	s.loading = false
	s.err = nil
	view := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(view)

	return nil
}

func (s *vaultSynchronizer) Add(ctx context.Context, record models.VaultRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	ciphertext, err := s.codec.Encrypt(record, s.key)
	if err != nil {
		return fmt.Errorf("encrypt record for create: %w", err)
	}

	if _, err = s.server.CreateEnvelope(ctx, ciphertext); err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}

	// Reconcile the canonical id and timestamps instead of optimistically
	// appending a client-guessed record.
	return s.Refresh(ctx)
}

func (s *vaultSynchronizer) Update(ctx context.Context, id string, record models.VaultRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	ciphertext, err := s.codec.Encrypt(record, s.key)
	if err != nil {
		return fmt.Errorf("encrypt record for update: %w", err)
	}

	if _, err = s.server.UpdateEnvelope(ctx, id, ciphertext); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update envelope %s: %w", id, err)
	}

	return s.Refresh(ctx)
}

func (s *vaultSynchronizer) Delete(ctx context.Context, id string) error {
	if err := s.server.DeleteEnvelope(ctx, id); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete envelope %s: %w", id, err)
	}

	return s.Refresh(ctx)
}

func (s *vaultSynchronizer) Filter(query string) []models.VaultRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.VaultRecord, 0, len(s.items))
	for _, item := range s.items {
		if query == "" || recordMatches(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (s *vaultSynchronizer) Subscribe(fn func(View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *vaultSynchronizer) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	view := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(view)
}

func (s *vaultSynchronizer) publish(view View) {
	s.mu.RLock()
	observers := make([]func(View), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(view)
	}
}

func recordMatches(record models.VaultRecord, loweredQuery string) bool {
	for _, field := range []string{record.Title, record.Username, record.URL, record.Notes} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
