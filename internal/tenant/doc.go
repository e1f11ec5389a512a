// Package tenant owns the private SQLite store of every user.
//
// # Layout
//
// Each tenant maps 1:1 to a file under the configured data directory. The
// file name is the SHA-256 hex digest of the username: a fixed 67 bytes
// with ".db", safe for any username and distinct for usernames that differ
// only in case.
//
// # Provisioning
//
// Manager.Ensure creates the file and its income, expenses and savings
// tables when absent. It is idempotent and is called on registration and on
// every login. Ledger operations never create a store: calling WithStore or
// WithTx for a tenant that was never provisioned yields common.ErrorNotFound.
//
// # Concurrency
//
// Operations on the same tenant are serialized by a per-tenant mutex;
// operations on different tenants never wait on each other. Every call
// opens the file, runs, and closes it again on all exit paths.
package tenant
