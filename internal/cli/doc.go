// Package cli provides the interactive ledger command-line client.
//
// It drives the ledger core in-process: register or log in, then add,
// update, delete and list income and expenses, read the savings history,
// view reports and manage interests. The session token issued at login is
// resolved to a username before every ledger call.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
