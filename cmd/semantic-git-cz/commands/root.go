// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/semantic-git-cz/cmd/semantic-git-cz/internal/clierr"
)

const defaultVersion = "0.1.0"

const longHelp = `Interactive tool for creating semantic commit messages with version prefixes.
Format: {semver}-{type}: {emoji} {message}
Example: patch-feat: ✨ add user authentication

Run without arguments inside a git repository with staged changes.`

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	configPath string
	backend    string
	dir        string
	verbose    bool
}

// NewRootCmd constructs the semantic-git-cz root Cobra command. Running it
// without arguments starts the interactive commit session.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("SEMANTIC_GIT_CZ_VERSION")
	if version == "" {
		version = defaultVersion
	}

	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "semantic-git-cz",
		Short:         "Semantic Git-CZ - A semantic commit message tool",
		Long:          longHelp,
		Version:       version,
		Args:          rejectArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("semantic-git-cz {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Newf(clierr.ExitUsage, "%v\nUse -h or --help for usage information", err)
	})

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().StringVar(&opts.backend, "backend", "cli", "Git backend: cli (git binary) or go-git (in-process)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default: ./.semantic-git-cz.yaml if present)")
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Working directory of the repository")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Write diagnostics to stderr")
	cmd.Flags().BoolP("version", "v", false, "Show version information")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of semantic-git-cz",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "semantic-git-cz %s\n", version)
		},
	})

	return cmd
}

func rejectArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return clierr.Newf(clierr.ExitUsage, "Unknown option: %s\nUse -h or --help for usage information", args[0])
}
