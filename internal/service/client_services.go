package service

import (
	"github.com/neverov-dev/passvault/internal/adapter"
	"github.com/neverov-dev/passvault/internal/clipboard"
	"github.com/neverov-dev/passvault/internal/crypto"
	"github.com/neverov-dev/passvault/internal/logger"
)

// ClientServices bundles everything the client runtime needs: the remote
// store adapter, the session synchronizer, and the clipboard escrow.
//
// Server is present before login; Vault is nil until a session starts and is
// dropped again on sign-out.
type ClientServices struct {
	Server    adapter.VaultServer
	Vault     Synchronizer
	Clipboard *clipboard.Escrow

	codec  crypto.Codec
	logger *logger.Logger
}

// NewClientServices constructs the pre-session service container.
func NewClientServices(server adapter.VaultServer, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Server:    server,
		Clipboard: clipboard.NewEscrow(log),
		codec:     crypto.NewCodec(),
		logger:    log,
	}
}

// StartSession creates the session-scoped [Synchronizer] with the vault
// encryption key that became available at login.
func (c *ClientServices) StartSession(key string) {
	c.Vault = NewSynchronizer(c.Server, c.codec, key, c.logger)
}

// EndSession tears the session state down. The decrypted collection and the
// key are dropped with the synchronizer.
func (c *ClientServices) EndSession() {
	c.Vault = nil
	c.Server.SetToken("")
}
