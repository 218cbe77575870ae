package apperr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Display(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"io", IO(io.ErrUnexpectedEOF), "IO error: unexpected EOF"},
		{"git", Git("not a git repository"), "Git error: not a git repository"},
		{"precondition", ErrNoStagedChanges, "Git error: No staged changes to commit"},
		{"invalid input", ErrEmptySubject, "Invalid input: Commit message cannot be empty"},
		{"git with cause", Gitf(io.ErrClosedPipe, "opening repository"), "Git error: opening repository: io: read/write on closed pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIO_Nil(t *testing.T) {
	assert.NoError(t, IO(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindIO, KindOf(IO(ErrEndOfInput)))
	assert.Equal(t, KindGit, KindOf(Git("boom")))
	assert.Equal(t, KindPrecondition, KindOf(fmt.Errorf("checking: %w", ErrNotRepository)))
	assert.Equal(t, KindInvalidInput, KindOf(ErrEmptySubject))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorChain(t *testing.T) {
	err := fmt.Errorf("reading subject: %w", IO(ErrEndOfInput))
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.NotErrorIs(t, err, ErrEmptySubject)

	wrapped := fmt.Errorf("session: %w", ErrNotRepository)
	assert.ErrorIs(t, wrapped, ErrNotRepository)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "git", KindGit.String())
	assert.Equal(t, "precondition", KindPrecondition.String())
	assert.Equal(t, "invalid-input", KindInvalidInput.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
