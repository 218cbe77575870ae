// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package catalog

import "fmt"

// Category classifies the intent of a commit.
type Category int

const (
	Feat Category = iota
	Fix
	Docs
	Style
	Refactor
	Test
	Chore
	Ci
	Perf
)

type categoryInfo struct {
	name        string
	glyph       string
	description string
}

// Glyphs must stay pairwise distinct.
var categoryTable = [...]categoryInfo{
	Feat:     {"feat", "✨", "A new feature"},
	Fix:      {"fix", "🐛", "A bug fix"},
	Docs:     {"docs", "📚", "Documentation only changes"},
	Style:    {"style", "💎", "Changes that do not affect the meaning of the code"},
	Refactor: {"refactor", "♻️", "A code change that neither fixes a bug nor adds a feature"},
	Test:     {"test", "🧪", "Adding missing tests or correcting existing tests"},
	Chore:    {"chore", "🔧", "Changes to the build process or auxiliary tools"},
	Ci:       {"ci", "🚀", "Changes to CI configuration files and scripts"},
	Perf:     {"perf", "⚡", "A code change that improves performance"},
}

// Categories returns every category in menu order.
func Categories() []Category {
	return []Category{Feat, Fix, Docs, Style, Refactor, Test, Chore, Ci, Perf}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryTable)
}

// Name is the lowercase word used verbatim in commit messages.
func (c Category) Name() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].name
}

// Glyph is the emoji marker placed before the subject.
func (c Category) Glyph() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].glyph
}

func (c Category) Description() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].description
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.Name()
}
