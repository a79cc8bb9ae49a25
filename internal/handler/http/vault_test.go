package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/internal/store"
	"github.com/neverov-dev/passvault/models"
)

const testUserID int64 = 42

func TestListEnvelopes_Success(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)

	now := time.Now().UTC()
	vault.EXPECT().
		ListEnvelopes(gomock.Any(), testUserID).
		Return([]models.VaultEnvelope{
			{ID: "id-1", Ciphertext: "blob-1", CreatedAt: now, UpdatedAt: now},
			{ID: "id-2", Ciphertext: "blob-2", CreatedAt: now, UpdatedAt: now},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vault/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list models.ListEnvelopesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "id-1", list.Items[0].ID)
}

func TestListEnvelopes_EmptyVaultReturnsEmptyArray(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)
	vault.EXPECT().
		ListEnvelopes(gomock.Any(), testUserID).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/vault/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// items must serialise as [] rather than null
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestCreateEnvelope_Success(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)

	created := models.VaultEnvelope{ID: "new-id", Ciphertext: "blob"}
	vault.EXPECT().
		CreateEnvelope(gomock.Any(), testUserID, models.Ciphertext("blob")).
		Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/vault/", strings.NewReader(`{"ciphertext":"blob"}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.EnvelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-id", resp.Item.ID)
}

func TestCreateEnvelope_EmptyCiphertext(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)
	vault.EXPECT().
		CreateEnvelope(gomock.Any(), testUserID, models.Ciphertext("")).
		Return(models.VaultEnvelope{}, service.ErrEmptyCiphertext)

	req := httptest.NewRequest(http.MethodPost, "/api/vault/", strings.NewReader(`{"ciphertext":""}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEnvelope_Success(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)

	updated := models.VaultEnvelope{ID: "id-1", Ciphertext: "new-blob"}
	vault.EXPECT().
		UpdateEnvelope(gomock.Any(), testUserID, "id-1", models.Ciphertext("new-blob")).
		Return(updated, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/id-1", strings.NewReader(`{"ciphertext":"new-blob"}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EnvelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-blob", string(resp.Item.Ciphertext))
}

func TestUpdateEnvelope_NotFound(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)
	vault.EXPECT().
		UpdateEnvelope(gomock.Any(), testUserID, "missing", models.Ciphertext("blob")).
		Return(models.VaultEnvelope{}, store.ErrEnvelopeNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/vault/missing", strings.NewReader(`{"ciphertext":"blob"}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEnvelope_Success(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)
	vault.EXPECT().
		DeleteEnvelope(gomock.Any(), testUserID, "id-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/vault/id-1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteEnvelope_NotFound(t *testing.T) {
	handler, auth, vault := newTestHandler(t)

	auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: testUserID}, nil)
	vault.EXPECT().
		DeleteEnvelope(gomock.Any(), testUserID, "missing").
		Return(store.ErrEnvelopeNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/vault/missing", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
