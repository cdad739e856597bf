// Package errors re-exports github.com/cockroachdb/errors so the rest
// of this module wraps and inspects errors through one stable import,
// and carries the sentinel errors the driver and cache boundaries need.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
	Is        = crdb.Is
	As        = crdb.As
	Unwrap    = crdb.Unwrap
)

// ErrSourceNotFound indicates a requested source file does not exist
// on disk.
var ErrSourceNotFound = New("source file not found")

// ErrCacheUnavailable indicates the incremental-transpile cache could
// not be opened or queried. Callers return it as is; there is no
// fallback to an uncached transpile.
var ErrCacheUnavailable = New("cache unavailable")
