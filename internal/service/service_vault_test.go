package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/mock"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/store"
	"github.com/neverov-dev/passvault/models"
)

func newTestVaultService(t *testing.T) (service.VaultService, *mock.MockEnvelopeRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	envelopes := mock.NewMockEnvelopeRepository(ctrl)

	return service.NewVaultService(envelopes, logger.Nop()), envelopes
}

func TestVaultListEnvelopes_Delegates(t *testing.T) {
	vault, envelopes := newTestVaultService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	stored := []models.VaultEnvelope{
		{ID: "id-1", Ciphertext: "blob-1", CreatedAt: now, UpdatedAt: now},
		{ID: "id-2", Ciphertext: "blob-2", CreatedAt: now, UpdatedAt: now},
	}

	envelopes.EXPECT().ListEnvelopes(gomock.Any(), int64(42)).Return(stored, nil)

	got, err := vault.ListEnvelopes(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestVaultCreateEnvelope_EmptyCiphertext(t *testing.T) {
	vault, _ := newTestVaultService(t)
	ctx := context.Background()

	_, err := vault.CreateEnvelope(ctx, 42, "")
	assert.ErrorIs(t, err, service.ErrEmptyCiphertext)
}

func TestVaultCreateEnvelope_Delegates(t *testing.T) {
	vault, envelopes := newTestVaultService(t)
	ctx := context.Background()

	created := models.VaultEnvelope{ID: "new-id", Ciphertext: "blob"}
	envelopes.EXPECT().CreateEnvelope(gomock.Any(), int64(42), models.Ciphertext("blob")).Return(created, nil)

	got, err := vault.CreateEnvelope(ctx, 42, "blob")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestVaultUpdateEnvelope_Validation(t *testing.T) {
	vault, _ := newTestVaultService(t)
	ctx := context.Background()

	_, err := vault.UpdateEnvelope(ctx, 42, "", "blob")
	assert.ErrorIs(t, err, service.ErrEmptyEnvelopeID)

	_, err = vault.UpdateEnvelope(ctx, 42, "id-1", "")
	assert.ErrorIs(t, err, service.ErrEmptyCiphertext)
}

func TestVaultUpdateEnvelope_NotFoundPassthrough(t *testing.T) {
	vault, envelopes := newTestVaultService(t)
	ctx := context.Background()

	envelopes.EXPECT().
		UpdateEnvelope(gomock.Any(), int64(42), "missing", models.Ciphertext("blob")).
		Return(models.VaultEnvelope{}, store.ErrEnvelopeNotFound)

	_, err := vault.UpdateEnvelope(ctx, 42, "missing", "blob")
	assert.ErrorIs(t, err, store.ErrEnvelopeNotFound)
}

func TestVaultDeleteEnvelope_Delegates(t *testing.T) {
	vault, envelopes := newTestVaultService(t)
	ctx := context.Background()

	envelopes.EXPECT().DeleteEnvelope(gomock.Any(), int64(42), "id-1").Return(nil)
	require.NoError(t, vault.DeleteEnvelope(ctx, 42, "id-1"))

	err := vault.DeleteEnvelope(ctx, 42, "")
	assert.ErrorIs(t, err, service.ErrEmptyEnvelopeID)
}
