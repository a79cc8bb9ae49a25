package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neverov-dev/passvault/models"
)

func testRecord() models.VaultRecord {
	return models.VaultRecord{
		Title:    "Bank",
		Username: "a@b.com",
		Password: "X1!",
		URL:      "https://bank.example",
		Notes:    "main account",
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec()
	rec := testRecord()

	ct, err := codec.Encrypt(rec, "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, ct)

	got, err := codec.Decrypt(ct, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCodec_RoundTrip_EmptyOptionalFields(t *testing.T) {
	codec := NewCodec()
	rec := models.VaultRecord{Title: "only title"}

	ct, err := codec.Encrypt(rec, "k")
	require.NoError(t, err)

	got, err := codec.Decrypt(ct, "k")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestCodec_NonceFreshness(t *testing.T) {
	codec := NewCodec()
	rec := testRecord()

	first, err := codec.Encrypt(rec, "key")
	require.NoError(t, err)
	second, err := codec.Encrypt(rec, "key")
	require.NoError(t, err)

	// Same record, same key: a fresh nonce must still make the blobs differ.
	assert.NotEqual(t, first, second)
}

func TestCodec_WrongKey(t *testing.T) {
	codec := NewCodec()

	ct, err := codec.Encrypt(testRecord(), "key-one")
	require.NoError(t, err)

	_, err = codec.Decrypt(ct, "key-two")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestCodec_PlaintextAbsentFromBlob(t *testing.T) {
	codec := NewCodec()

	ct, err := codec.Encrypt(testRecord(), "key")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(string(ct))
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "Bank")
	assert.NotContains(t, string(ct), "Bank")
}

func TestCodec_Decrypt_MalformedInputs(t *testing.T) {
	codec := NewCodec()

	validCt, err := codec.Encrypt(testRecord(), "key")
	require.NoError(t, err)

	tests := []struct {
		name       string
		ciphertext models.Ciphertext
	}{
		{name: "not base64", ciphertext: "%%% not base64 %%%"},
		{name: "empty string", ciphertext: ""},
		{name: "too short for nonce", ciphertext: models.Ciphertext(base64.StdEncoding.EncodeToString([]byte("short")))},
		{name: "tampered blob", ciphertext: tamper(t, validCt)},
		{name: "random bytes", ciphertext: models.Ciphertext(base64.StdEncoding.EncodeToString(make([]byte, 64)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.ciphertext, "key")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

// tamper flips one byte in the middle of a valid blob.
func tamper(t *testing.T, ct models.Ciphertext) models.Ciphertext {
	t.Helper()
	blob, err := base64.StdEncoding.DecodeString(string(ct))
	require.NoError(t, err)
	blob[len(blob)/2] ^= 0xff
	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob))
}
