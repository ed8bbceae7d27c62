// Package cli provides the interactive cellar command-line client.
//
// NewApp wires configuration, the local SQLite store, the remote gRPC store,
// the offline cache and queue, and the sync coordinator. App.Run starts the
// background connectivity listener, which drains queued changes whenever the
// device comes back online, and then blocks in the REPL until the user exits.
package cli
