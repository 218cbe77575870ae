// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/semantic-git-cz/cmd/semantic-git-cz/internal/clierr"
	"github.com/bartekus/semantic-git-cz/internal/apperr"
	"github.com/bartekus/semantic-git-cz/internal/config"
	"github.com/bartekus/semantic-git-cz/internal/logger"
	"github.com/bartekus/semantic-git-cz/internal/session"
	"github.com/bartekus/semantic-git-cz/internal/vcs"
)

// runCommit resolves configuration, picks the git backend and runs one
// interactive session on the command's streams.
func runCommit(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Resolve(opts.configPath, opts.dir)
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "loading config", err)
	}

	// Flags override the file.
	if cmd.Flags().Changed("backend") {
		cfg.Backend = opts.backend
	}
	if opts.verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return clierr.Wrap(clierr.ExitUsage, "invalid options", err)
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Verbose)
	log.Debug("starting session", "backend", cfg.Backend, "dir", opts.dir)

	repo, err := vcs.New(vcs.Options{
		Backend:   cfg.Backend,
		Dir:       opts.dir,
		GitBinary: cfg.GitBinary,
	})
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "selecting backend", err)
	}

	res, err := session.New(repo, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(cmd.Context())
	if err != nil {
		log.Debug("session failed", "kind", apperr.KindOf(err).String())
		return clierr.WithCode(exitCodeFor(err), err)
	}
	log.Debug("session finished", "committed", res.Committed)
	return nil
}

func exitCodeFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindGit:
		return clierr.ExitGit
	case apperr.KindPrecondition:
		return clierr.ExitPrecondition
	case apperr.KindInvalidInput:
		return clierr.ExitInvalidInput
	default:
		return clierr.ExitFailure
	}
}
