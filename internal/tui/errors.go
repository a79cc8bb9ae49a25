package tui

import "errors"

// ErrUserQuit is returned when the user exits the program instead of
// completing the authentication flow.
var ErrUserQuit = errors.New("user quit")
