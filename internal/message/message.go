// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package message renders the final commit message from the wizard's answers.
//
// Format: {impact}-{category}: {glyph} {subject}[\n\n{body}]
package message

import (
	"strings"

	"github.com/bartekus/semantic-git-cz/internal/catalog"
)

// Format combines the selections into a commit message. subject must already
// be non-empty; an empty body yields a single-line message. No trailing
// newline is added.
func Format(impact catalog.Impact, category catalog.Category, subject, body string) string {
	var b strings.Builder
	b.WriteString(impact.Name())
	b.WriteByte('-')
	b.WriteString(category.Name())
	b.WriteString(": ")
	b.WriteString(category.Glyph())
	b.WriteByte(' ')
	b.WriteString(subject)

	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	return b.String()
}

// CategoryMenuDescription is the description shown next to a category in the
// selection menu: the glyph followed by the one-line description.
func CategoryMenuDescription(c catalog.Category) string {
	return c.Glyph() + " " + c.Description()
}

// Indent prefixes every non-empty line of msg with prefix.
func Indent(msg, prefix string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
