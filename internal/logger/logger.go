// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package logger builds the diagnostic logger. Diagnostics never go to the
// console stream the wizard talks on; they are off unless verbose is set.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text logger writing debug-level records to w when verbose is
// true, and a logger that drops everything otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose || w == nil {
		return Discard()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
