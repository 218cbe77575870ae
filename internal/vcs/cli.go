// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package vcs

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/bartekus/semantic-git-cz/internal/apperr"
)

// CLI drives the git binary as a subprocess.
type CLI struct {
	dir    string
	binary string
}

// NewCLI creates a CLI backend running binary (default "git") in dir.
func NewCLI(dir, binary string) *CLI {
	if binary == "" {
		binary = "git"
	}
	return &CLI{dir: dir, binary: binary}
}

// result is the outcome of one git invocation. exited is true when the
// process ran and returned a non-zero status.
type result struct {
	stdout string
	stderr string
	exited bool
}

func (c *CLI) run(ctx context.Context, args ...string) (result, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, apperr.Gitf(ctxErr, "running %s %s", c.binary, strings.Join(args, " "))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.exited = true
		return res, nil
	}
	return res, apperr.Gitf(err, "running %s %s", c.binary, strings.Join(args, " "))
}

func (c *CLI) IsRepository(ctx context.Context) (bool, error) {
	res, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return !res.exited, nil
}

// HasStagedChanges relies on `git diff --cached --quiet` exiting non-zero
// when the index has changes.
func (c *CLI) HasStagedChanges(ctx context.Context) (bool, error) {
	res, err := c.run(ctx, "diff", "--cached", "--quiet")
	if err != nil {
		return false, err
	}
	return res.exited, nil
}

func (c *CLI) StagedFiles(ctx context.Context) ([]string, error) {
	res, err := c.run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	if res.exited {
		return nil, apperr.Git(res.diagnostic())
	}
	return ParseFileList(res.stdout), nil
}

func (c *CLI) Commit(ctx context.Context, message string) error {
	res, err := c.run(ctx, "commit", "-m", message)
	if err != nil {
		return err
	}
	if res.exited {
		return apperr.Git(res.diagnostic())
	}
	return nil
}

// diagnostic prefers stderr; git prints some refusals (e.g. "nothing to
// commit") on stdout.
func (r result) diagnostic() string {
	if msg := strings.TrimSpace(r.stderr); msg != "" {
		return msg
	}
	return strings.TrimSpace(r.stdout)
}
