// Package client connects the cellar CLI to its backing services.
//
// # Overview
//
// The package provides:
//  1. Client, the remote store contract as the device sees it: store.Store
//     plus presigned label uploads.
//  2. GRPCClient, the gRPC implementation. It tags every call with the
//     install id and maps status codes to the sentinel errors of package
//     common (ErrNotFound, ErrInvalidArgument, ErrInvalidTransition,
//     ErrLocationTaken, ErrUnavailable).
//  3. InitDatabase and RunMigrations, which open the local SQLite file and
//     apply the embedded goose migrations.
package client
