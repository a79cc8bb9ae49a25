package store

import "github.com/neverov-dev/passvault/internal/logger"

// Storages bundles the repositories backed by a single database connection.
type Storages struct {
	UserRepository     UserRepository
	EnvelopeRepository EnvelopeRepository
}

// NewStorages constructs all repositories over the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		EnvelopeRepository: NewEnvelopeRepository(db, logger),
	}
}
