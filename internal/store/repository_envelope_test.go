package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/neverov-dev/passvault/internal/logger"
)

func newTestEnvelopeRepo(t *testing.T) (*envelopeRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &envelopeRepository{db: db, logger: logger.Nop()}, mock
}

func TestListEnvelopes_Success(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.
		NewRows([]string{"id", "ciphertext", "created_at", "updated_at"}).
		AddRow("id-1", "blob-1", now, now).
		AddRow("id-2", "blob-2", now, now)

	mock.ExpectQuery("SELECT id, ciphertext, created_at, updated_at FROM vault_items").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	envelopes, err := repo.ListEnvelopes(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(envelopes) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(envelopes))
	}
	if envelopes[0].ID != "id-1" || envelopes[1].ID != "id-2" {
		t.Errorf("unexpected envelope order: %v, %v", envelopes[0].ID, envelopes[1].ID)
	}
}

func TestListEnvelopes_Empty(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, ciphertext, created_at, updated_at FROM vault_items").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ciphertext", "created_at", "updated_at"}))

	envelopes, err := repo.ListEnvelopes(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelopes == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(envelopes) != 0 {
		t.Fatalf("expected 0 envelopes, got %d", len(envelopes))
	}
}

func TestListEnvelopes_QueryError(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, ciphertext, created_at, updated_at FROM vault_items").
		WithArgs(int64(42)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.ListEnvelopes(ctx, 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateEnvelope_Success(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.
		NewRows([]string{"id", "ciphertext", "created_at", "updated_at"}).
		AddRow("assigned-id", "blob", now, now)

	mock.ExpectQuery("INSERT INTO vault_items").
		WithArgs(sqlmock.AnyArg(), int64(42), "blob", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateEnvelope(ctx, 42, "blob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "assigned-id" {
		t.Errorf("expected server-assigned id, got %s", created.ID)
	}
	if created.Ciphertext != "blob" {
		t.Errorf("unexpected ciphertext: %s", created.Ciphertext)
	}
}

func TestUpdateEnvelope_Success(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()
	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()

	rows := sqlmock.
		NewRows([]string{"id", "ciphertext", "created_at", "updated_at"}).
		AddRow("id-1", "new-blob", created, updated)

	mock.ExpectQuery("UPDATE vault_items").
		WithArgs("new-blob", sqlmock.AnyArg(), "id-1", int64(42)).
		WillReturnRows(rows)

	envelope, err := repo.UpdateEnvelope(ctx, 42, "id-1", "new-blob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envelope.Ciphertext != "new-blob" {
		t.Errorf("unexpected ciphertext: %s", envelope.Ciphertext)
	}
	if !envelope.CreatedAt.Equal(created) {
		t.Errorf("created_at must not change on update")
	}
}

func TestUpdateEnvelope_NotFound(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("UPDATE vault_items").
		WithArgs("blob", sqlmock.AnyArg(), "missing", int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateEnvelope(ctx, 42, "missing", "blob")
	if !errors.Is(err, ErrEnvelopeNotFound) {
		t.Fatalf("expected ErrEnvelopeNotFound, got %v", err)
	}
}

func TestDeleteEnvelope_Success(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs("id-1", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteEnvelope(ctx, 42, "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteEnvelope_NotFound(t *testing.T) {
	repo, mock := newTestEnvelopeRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs("missing", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEnvelope(ctx, 42, "missing")
	if !errors.Is(err, ErrEnvelopeNotFound) {
		t.Fatalf("expected ErrEnvelopeNotFound, got %v", err)
	}
}

func TestBuildQueries_PlaceholderFormats(t *testing.T) {
	pg := builderForDriver("pgx")
	lite := builderForDriver("sqlite3")

	pgQuery, _, err := buildListEnvelopesQuery(pg, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	liteQuery, _, err := buildListEnvelopesQuery(lite, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(pgQuery, "$1") {
		t.Errorf("postgres query must use dollar placeholders: %s", pgQuery)
	}
	if !strings.Contains(liteQuery, "?") || strings.Contains(liteQuery, "$1") {
		t.Errorf("sqlite query must use question-mark placeholders: %s", liteQuery)
	}
}
