// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/semantic-git-cz/cmd/semantic-git-cz/commands"
	"github.com/bartekus/semantic-git-cz/cmd/semantic-git-cz/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
