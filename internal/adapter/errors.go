package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401: the session token is missing, invalid,
	// or expired.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound maps HTTP 404: no envelope with the given id is owned by
	// the current identity. Distinct from a transport fault so callers can
	// tell "nothing to update/delete" apart from a network failure.
	ErrNotFound = errors.New("envelope not found")

	// ErrBadRequest maps HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrConflict maps HTTP 409.
	ErrConflict = errors.New("conflict")
)
