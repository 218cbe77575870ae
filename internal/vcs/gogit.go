// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package vcs

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/bartekus/semantic-git-cz/internal/apperr"
)

// GoGit reads and writes the repository in-process. Author identity comes
// from the repository and global git configuration.
type GoGit struct {
	dir string
}

// NewGoGit creates a go-git backend rooted at dir. Parent directories are
// searched for .git the way the git binary does.
func NewGoGit(dir string) *GoGit {
	if dir == "" {
		dir = "."
	}
	return &GoGit{dir: dir}
}

func (g *GoGit) open() (*git.Repository, error) {
	return git.PlainOpenWithOptions(g.dir, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *GoGit) worktree(ctx context.Context) (*git.Repository, *git.Worktree, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	repo, err := g.open()
	if err != nil {
		return nil, nil, apperr.Gitf(err, "opening repository")
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, apperr.Gitf(err, "opening worktree")
	}
	return repo, wt, nil
}

func (g *GoGit) IsRepository(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	repo, err := g.open()
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Gitf(err, "opening repository")
	}
	if _, err := repo.Worktree(); errors.Is(err, git.ErrIsBareRepository) {
		return false, nil
	}
	return true, nil
}

func (g *GoGit) HasStagedChanges(ctx context.Context) (bool, error) {
	files, err := g.StagedFiles(ctx)
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

// StagedFiles returns every path whose index entry differs from HEAD, sorted.
func (g *GoGit) StagedFiles(ctx context.Context) ([]string, error) {
	_, wt, err := g.worktree(ctx)
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, apperr.Gitf(err, "reading status")
	}

	files := []string{}
	for path, fs := range status {
		if fs.Staging == git.Unmodified || fs.Staging == git.Untracked {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func (g *GoGit) Commit(ctx context.Context, message string) error {
	repo, wt, err := g.worktree(ctx)
	if err != nil {
		return err
	}
	author, err := signature(repo)
	if err != nil {
		return err
	}
	if _, err := wt.Commit(message, &git.CommitOptions{Author: author}); err != nil {
		return apperr.Gitf(err, "committing")
	}
	return nil
}

func signature(repo *git.Repository) (*object.Signature, error) {
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return nil, apperr.Gitf(err, "reading git config")
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, apperr.Git("Author identity unknown: set user.name and user.email")
	}
	return &object.Signature{
		Name:  cfg.User.Name,
		Email: cfg.User.Email,
		When:  time.Now(),
	}, nil
}
