// Package cli provides the interactive idkeeper command-line client.
//
// It wires configuration, the HTTP API client and a health probe into a REPL.
// The session token lives only in memory: it is lost on exit and replaced on
// every login.
//
// Commands:
//   - register, login, logout
//   - list, update <username|password|email>, delete
//   - help, exit
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
