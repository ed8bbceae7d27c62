// Package logging is the logger every cellarkeeper component takes. The
// server logs JSON for collection, the client logs text to stderr so it stays
// out of the REPL output.
package logging

import "context"

// Logger writes leveled records with key/value attributes:
//
//	logger.Warn(ctx, "replay failed", "op", op.ID, "collection", "bottles")
//
// Components tag their records once with With("module", name).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for a fallback that kept the caller working, such as serving
	// the cache after a failed remote read.
	Warn(ctx context.Context, msg string, args ...any)
	// Error is for a failure the caller could not recover from.
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Nop drops every record. Repositories and the syncer fall back to it when
// no logger is configured.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
