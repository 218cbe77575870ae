// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Semantic Git-CZ - An interactive helper for composing semantic, versioned commit messages.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package prompt implements the line-oriented console protocol of the commit
// wizard: single-line prompts, multi-line collection and numbered menus.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bartekus/semantic-git-cz/internal/apperr"
)

const selectLabel = "Select an option: "

// Prompter reads answers from one input stream and writes prompts to one
// output stream. It is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Printf writes formatted text to the output stream.
func (p *Prompter) Printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		return apperr.IO(err)
	}
	return p.flush()
}

// Line writes label without a newline and returns the next input line with
// surrounding whitespace removed.
func (p *Prompter) Line(label string) (string, error) {
	if err := p.Printf("%s", label); err != nil {
		return "", err
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Multiline writes label on its own line, then collects lines until an empty
// one or the end of input. Lines are joined with "\n"; the result may be empty.
func (p *Prompter) Multiline(label string) (string, error) {
	if err := p.Printf("%s\n", label); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := p.readLine()
		if errors.Is(err, apperr.ErrEndOfInput) {
			break
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Select prints a numbered menu and returns the 0-based index of the chosen
// item. descriptions is aligned with items by index and may be shorter or nil.
// Invalid answers are re-prompted until a valid one arrives or input ends.
func (p *Prompter) Select(label string, items []fmt.Stringer, descriptions []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("prompt: nothing to select from")
	}

	if err := p.Printf("%s\n", label); err != nil {
		return 0, err
	}
	for i, item := range items {
		if i < len(descriptions) {
			if err := p.Printf("  %d. %s - %s\n", i+1, item, descriptions[i]); err != nil {
				return 0, err
			}
			continue
		}
		if err := p.Printf("  %d. %s\n", i+1, item); err != nil {
			return 0, err
		}
	}

	for {
		answer, err := p.Line(selectLabel)
		if err != nil {
			return 0, err
		}
		if n, ok := parseChoice(answer, len(items)); ok {
			return n - 1, nil
		}
		if err := p.Printf("Please enter a valid number between 1 and %d\n", len(items)); err != nil {
			return 0, err
		}
	}
}

// Choose runs Select over items and returns the chosen item. describe may be
// nil, in which case the menu has no descriptions.
func Choose[T fmt.Stringer](p *Prompter, label string, items []T, describe func(T) string) (T, error) {
	var zero T

	options := make([]fmt.Stringer, len(items))
	var descriptions []string
	for i, item := range items {
		options[i] = item
		if describe != nil {
			descriptions = append(descriptions, describe(item))
		}
	}

	idx, err := p.Select(label, options, descriptions)
	if err != nil {
		return zero, err
	}
	return items[idx], nil
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count as yes;
// every other answer is no and is not re-asked.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func parseChoice(answer string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}

// readLine returns one line without its terminator. A final line that lacks
// a newline is still returned; a read that yields nothing at EOF is an error.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", apperr.IO(err)
		}
		if line == "" {
			return "", apperr.IO(apperr.ErrEndOfInput)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type flusher interface {
	Flush() error
}

func (p *Prompter) flush() error {
	f, ok := p.out.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return apperr.IO(err)
	}
	return nil
}
