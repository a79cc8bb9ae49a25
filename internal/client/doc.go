// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, client services, and the background
// refresh job into a single process lifecycle: authenticate, open a
// session, run the vault UI, tear the session down.
package client
