// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package vcs is the version-control side of the commit wizard: checking the
// working directory, listing what is staged and recording the commit.
//
// Two backends exist. CLI shells out to the git binary; GoGit works in-process
// through go-git.
package vcs

import (
	"context"
	"fmt"
	"strings"
)

// Repository is what a commit session needs from version control.
type Repository interface {
	// IsRepository reports whether the working directory is inside a work tree.
	IsRepository(ctx context.Context) (bool, error)
	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges(ctx context.Context) (bool, error)
	// StagedFiles lists staged paths. The result may be empty.
	StagedFiles(ctx context.Context) ([]string, error)
	// Commit records the staged changes with message.
	Commit(ctx context.Context, message string) error
}

const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	Dir       string
	GitBinary string
}

// New returns the backend named by opts.Backend. An empty name selects the CLI.
func New(opts Options) (Repository, error) {
	switch opts.Backend {
	case "", BackendCLI:
		return NewCLI(opts.Dir, opts.GitBinary), nil
	case BackendGoGit:
		return NewGoGit(opts.Dir), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (must be %q or %q)", opts.Backend, BackendCLI, BackendGoGit)
	}
}

// ParseFileList splits newline-separated path output, dropping blank lines.
func ParseFileList(out string) []string {
	files := []string{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}
