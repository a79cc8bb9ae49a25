package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/models"
)

// envelopeRepository is the SQL-backed implementation of [EnvelopeRepository].
// It executes all envelope CRUD operations against the "vault_items" table.
//
// The server never inspects envelope contents: the ciphertext column is an
// opaque string produced and consumed entirely by clients. Every statement is
// scoped by user_id so one user can never read or touch another user's rows.
type envelopeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEnvelopeRepository constructs an [EnvelopeRepository] backed by the
// provided database connection and logger.
func NewEnvelopeRepository(db *DB, logger *logger.Logger) EnvelopeRepository {
	logger.Debug().Msg("creating envelope repository")
	return &envelopeRepository{
		db:     db,
		logger: logger,
	}
}

// ListEnvelopes retrieves every envelope owned by the given user, ordered by
// creation time. Returns an empty slice when the user has no envelopes.
func (r *envelopeRepository) ListEnvelopes(ctx context.Context, userID int64) ([]models.VaultEnvelope, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEnvelopesQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*envelopeRepository.ListEnvelopes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*envelopeRepository.ListEnvelopes").
			Int64("user_id", userID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing envelopes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	envelopes := make([]models.VaultEnvelope, 0, 50)
	for rows.Next() {
		var envelope models.VaultEnvelope
		if scanErr := rows.Scan(&envelope.ID, &envelope.Ciphertext, &envelope.CreatedAt, &envelope.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*envelopeRepository.ListEnvelopes").
				Int64("user_id", userID).
				Msg("failed to scan envelope row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		envelopes = append(envelopes, envelope)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*envelopeRepository.ListEnvelopes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return envelopes, nil
}

// CreateEnvelope persists a new envelope for the given user and returns the
// stored record with its server-assigned id and timestamps.
func (r *envelopeRepository) CreateEnvelope(ctx context.Context, userID int64, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	envelope := models.VaultEnvelope{
		ID:         uuid.NewString(),
		Ciphertext: ciphertext,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query, args, err := buildCreateEnvelopeQuery(r.db.builder, userID, envelope)
	if err != nil {
		log.Err(err).Str("func", "*envelopeRepository.CreateEnvelope").Msg("failed to build query")
		return models.VaultEnvelope{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.VaultEnvelope
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Ciphertext, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*envelopeRepository.CreateEnvelope").
			Int64("user_id", userID).
			Str("envelope_id", envelope.ID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("envelope insert failed")
		return models.VaultEnvelope{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdateEnvelope replaces the ciphertext of an existing envelope and bumps its
// updated_at timestamp. The created_at timestamp is left untouched.
//
// Returns [ErrEnvelopeNotFound] when no envelope with the given id belongs to
// the user.
func (r *envelopeRepository) UpdateEnvelope(ctx context.Context, userID int64, envelopeID string, ciphertext models.Ciphertext) (models.VaultEnvelope, error) {
	log := logger.FromContext(ctx)

	envelope := models.VaultEnvelope{
		ID:         envelopeID,
		Ciphertext: ciphertext,
		UpdatedAt:  time.Now().UTC(),
	}

	query, args, err := buildUpdateEnvelopeQuery(r.db.builder, userID, envelope)
	if err != nil {
		log.Err(err).Str("func", "*envelopeRepository.UpdateEnvelope").Msg("failed to build query")
		return models.VaultEnvelope{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.VaultEnvelope
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Ciphertext, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultEnvelope{}, ErrEnvelopeNotFound
		}

		log.Err(err).
			Str("func", "*envelopeRepository.UpdateEnvelope").
			Int64("user_id", userID).
			Str("envelope_id", envelopeID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("envelope update failed")
		return models.VaultEnvelope{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteEnvelope removes an envelope owned by the given user.
//
// Returns [ErrEnvelopeNotFound] when no envelope with the given id belongs to
// the user.
func (r *envelopeRepository) DeleteEnvelope(ctx context.Context, userID int64, envelopeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEnvelopeQuery(r.db.builder, userID, envelopeID)
	if err != nil {
		log.Err(err).Str("func", "*envelopeRepository.DeleteEnvelope").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*envelopeRepository.DeleteEnvelope").
			Int64("user_id", userID).
			Str("envelope_id", envelopeID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("envelope delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*envelopeRepository.DeleteEnvelope").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrEnvelopeNotFound
	}

	return nil
}
