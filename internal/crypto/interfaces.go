package crypto

import "github.com/neverov-dev/passvault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec is the client-side transform between a plaintext vault record and
// the opaque ciphertext string that is allowed to leave the device.
// It knows nothing about the network, storage, or users.
//
// The key is an opaque string supplied by the caller. The codec performs no
// key derivation from a user secret, no key storage, and no rotation.
type Codec interface {
	// Encrypt serializes record to JSON and encrypts it under key.
	// The output is a self-contained string: everything needed to decrypt
	// it again (the key excepted) is embedded in the blob itself.
	// Two calls with identical inputs produce different ciphertexts
	// because a fresh nonce is drawn per call.
	Encrypt(record models.VaultRecord, key string) (models.Ciphertext, error)

	// Decrypt reverses Encrypt. Any failure mode — malformed blob, wrong
	// key, corrupted ciphertext, or bytes that are not a valid serialized
	// record — is reported as an error wrapping [ErrDecryption]; callers
	// must treat all of them identically as "cannot recover this record".
	Decrypt(ciphertext models.Ciphertext, key string) (models.VaultRecord, error)
}
