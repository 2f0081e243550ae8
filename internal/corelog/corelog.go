// Package corelog supplies the package-level logger used for the rare
// diagnostic message emitted while parsing SAN/EPD text. It wraps
// github.com/op/go-logging the way frankkopp/FrankyGo wires the same
// package into its movegen/SAN internals: a module-scoped logger that is
// silent until a caller configures a backend for it.
package corelog

import "github.com/op/go-logging"

// Log is the chesscore package logger. It has no backend configured by
// default, so it drops every record until the embedding program calls
// logging.SetBackend.
var Log = logging.MustGetLogger("chesscore")
