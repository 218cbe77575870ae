// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package apperr defines the error kinds a commit session can fail with.
//
// Every failure that reaches the user carries exactly one Kind. The command
// layer maps kinds to process exit codes; nothing here knows about exit codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindIO covers console read/write failures, including end of input.
	KindIO
	// KindGit covers a version-control operation that reported failure.
	KindGit
	// KindPrecondition covers "not a repository" and "nothing staged".
	KindPrecondition
	// KindInvalidInput covers an empty subject line.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindGit:
		return "git"
	case KindPrecondition:
		return "precondition"
	case KindInvalidInput:
		return "invalid-input"
	default:
		return "unknown"
	}
}

// label is the user-facing prefix. Precondition failures read as git errors.
func (k Kind) label() string {
	switch k {
	case KindIO:
		return "IO error"
	case KindGit, KindPrecondition:
		return "Git error"
	case KindInvalidInput:
		return "Invalid input"
	default:
		return "Error"
	}
}

// Error is a classified failure. Msg is the top-level detail; Err is an
// optional cause reachable through errors.Is/As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind.label(), e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Kind.label(), e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind.label(), e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels for errors.Is checks.
var (
	ErrNotRepository   = &Error{Kind: KindPrecondition, Msg: "Not in a git repository"}
	ErrNoStagedChanges = &Error{Kind: KindPrecondition, Msg: "No staged changes to commit"}
	ErrEmptySubject    = &Error{Kind: KindInvalidInput, Msg: "Commit message cannot be empty"}

	// ErrEndOfInput is wrapped in a KindIO error when the console input is
	// exhausted in the middle of a prompt.
	ErrEndOfInput = errors.New("unexpected end of input")
)

// IO classifies err as a console failure.
func IO(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Err: err}
}

// Git reports a failed version-control operation with the tool's own text.
func Git(detail string) error {
	return &Error{Kind: KindGit, Msg: detail}
}

// Gitf wraps cause as a version-control failure.
func Gitf(cause error, format string, args ...any) error {
	return &Error{Kind: KindGit, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
