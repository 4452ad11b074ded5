// Package cli provides the securestore command-line interface.
//
// It wires configuration, logging, the selected vault backend (optionally
// sealed with a passphrase-derived key) and a securestore.Store into a cobra
// command tree. Every subcommand works on the same opened App; the "shell"
// subcommand keeps that App open and dispatches each input line to a fresh
// command tree, so an in-memory backend survives across commands.
//
// Key features:
//   - Raw items: set / get / has / delete
//   - Session: login / session / logout
//   - Payment token: payment store / show / clear
//   - Settings and biometric flag
//   - status / wipe / version / shell
//
// Entry point is Execute; see NewApp for backend selection.
package cli
