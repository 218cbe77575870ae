// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package session runs one interactive commit: preconditions, the two menus,
// subject and body, preview, confirmation and the commit itself.
package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/bartekus/semantic-git-cz/internal/apperr"
	"github.com/bartekus/semantic-git-cz/internal/catalog"
	"github.com/bartekus/semantic-git-cz/internal/logger"
	"github.com/bartekus/semantic-git-cz/internal/message"
	"github.com/bartekus/semantic-git-cz/internal/prompt"
	"github.com/bartekus/semantic-git-cz/internal/vcs"
)

const (
	banner        = "Semantic Git-CZ - Create semantic commit messages\n\n"
	impactLabel   = "Select the semantic version type:"
	categoryLabel = "\nSelect the commit type:"
	subjectLabel  = "Enter commit message: "
	bodyLabel     = "Enter commit body (optional, finish with an empty line):"
	confirmLabel  = "\nConfirm commit? (y/n): "
)

// Result describes how a session that did not fail ended.
type Result struct {
	Message   string
	Committed bool
}

type Session struct {
	repo   vcs.Repository
	prompt *prompt.Prompter
	log    *slog.Logger
}

// New wires a session to a repository and a console. log may be nil.
func New(repo vcs.Repository, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	return &Session{
		repo:   repo,
		prompt: prompt.New(in, out),
		log:    log,
	}
}

// Run executes the session. The commit is only attempted after an explicit
// yes; every error aborts before that point or is the commit's own failure.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if err := s.checkPreconditions(ctx); err != nil {
		return Result{}, err
	}

	if err := s.prompt.Printf(banner); err != nil {
		return Result{}, err
	}
	if err := s.showStagedFiles(ctx); err != nil {
		return Result{}, err
	}

	impact, err := prompt.Choose(s.prompt, impactLabel, catalog.Impacts(), catalog.Impact.Description)
	if err != nil {
		return Result{}, err
	}
	s.log.Debug("impact selected", "impact", impact.Name())

	category, err := prompt.Choose(s.prompt, categoryLabel, catalog.Categories(), message.CategoryMenuDescription)
	if err != nil {
		return Result{}, err
	}
	s.log.Debug("category selected", "category", category.Name())

	if err := s.prompt.Printf("\n"); err != nil {
		return Result{}, err
	}
	// An empty subject aborts; unlike the menus it is not re-asked.
	subject, err := s.prompt.Line(subjectLabel)
	if err != nil {
		return Result{}, err
	}
	if subject == "" {
		return Result{}, apperr.ErrEmptySubject
	}

	body, err := s.prompt.Multiline(bodyLabel)
	if err != nil {
		return Result{}, err
	}

	msg := message.Format(impact, category, subject, body)
	if err := s.prompt.Printf("\nCommit message preview:\n%s\n", message.Indent(msg, "  ")); err != nil {
		return Result{}, err
	}

	ok, err := s.prompt.Confirm(confirmLabel)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		s.log.Debug("commit cancelled by user")
		if err := s.prompt.Printf("\n❌ Commit cancelled\n"); err != nil {
			return Result{}, err
		}
		return Result{Message: msg}, nil
	}

	s.log.Debug("committing", "bytes", len(msg))
	if err := s.repo.Commit(ctx, msg); err != nil {
		return Result{}, err
	}
	if err := s.prompt.Printf("\n✅ Commit created successfully!\n"); err != nil {
		return Result{}, err
	}
	return Result{Message: msg, Committed: true}, nil
}

func (s *Session) checkPreconditions(ctx context.Context) error {
	isRepo, err := s.repo.IsRepository(ctx)
	if err != nil {
		return err
	}
	if !isRepo {
		return apperr.ErrNotRepository
	}

	staged, err := s.repo.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return apperr.ErrNoStagedChanges
	}
	return nil
}

func (s *Session) showStagedFiles(ctx context.Context) error {
	files, err := s.repo.StagedFiles(ctx)
	if err != nil {
		return err
	}
	s.log.Debug("staged files", "count", len(files))
	if len(files) == 0 {
		return nil
	}

	if err := s.prompt.Printf("Staged files:\n"); err != nil {
		return err
	}
	for _, f := range files {
		if err := s.prompt.Printf("  - %s\n", f); err != nil {
			return err
		}
	}
	return s.prompt.Printf("\n")
}
