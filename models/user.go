package models

import "time"

// User represents an account entity used for authentication and for scoping
// vault envelope ownership. The server never learns the vault encryption
// key; the password below protects the account, not the ciphertext.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext account password on inbound
	// register/login requests only. It is never persisted as-is.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored by the server.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}
