// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package catalog holds the two fixed choice sets offered by the commit
// wizard: semantic-version impact levels and change categories.
//
// Declaration order is significant. It is the order the menus are numbered in.
package catalog

import "fmt"

// Impact is the semantic-version level a change bumps.
type Impact int

const (
	Major Impact = iota
	Minor
	Patch
)

type impactInfo struct {
	name        string
	description string
}

var impactTable = [...]impactInfo{
	Major: {"major", "Breaking changes (incompatible API changes)"},
	Minor: {"minor", "New features (backwards compatible)"},
	Patch: {"patch", "Bug fixes (backwards compatible)"},
}

// Impacts returns every impact level in menu order.
func Impacts() []Impact {
	return []Impact{Major, Minor, Patch}
}

// Valid reports whether i is one of the declared levels.
func (i Impact) Valid() bool {
	return i >= 0 && int(i) < len(impactTable)
}

// Name is the lowercase word used verbatim in commit messages.
func (i Impact) Name() string {
	if !i.Valid() {
		return ""
	}
	return impactTable[i].name
}

func (i Impact) Description() string {
	if !i.Valid() {
		return ""
	}
	return impactTable[i].description
}

func (i Impact) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Impact(%d)", int(i))
	}
	return i.Name()
}
