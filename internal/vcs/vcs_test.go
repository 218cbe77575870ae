package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileList(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"blank lines dropped", "file1.rs\nfile2.rs\n\nfile3.rs\n", []string{"file1.rs", "file2.rs", "file3.rs"}},
		{"empty output", "", []string{}},
		{"crlf", "a.go\r\nb.go\r\n", []string{"a.go", "b.go"}},
		{"no trailing newline", "only.txt", []string{"only.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileList(tt.out))
		})
	}
}

func TestNew_Backends(t *testing.T) {
	r, err := New(Options{Dir: "."})
	require.NoError(t, err)
	assert.IsType(t, &CLI{}, r)

	r, err = New(Options{Backend: BackendGoGit, Dir: "."})
	require.NoError(t, err)
	assert.IsType(t, &GoGit{}, r)

	_, err = New(Options{Backend: "svn"})
	assert.ErrorContains(t, err, `unknown backend "svn"`)
}

// The suites below run the same expectations against both backends.

func backends(dir string) map[string]Repository {
	return map[string]Repository{
		BackendCLI:   NewCLI(dir, ""),
		BackendGoGit: NewGoGit(dir),
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

func TestRepository_NotARepository(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	for name, repo := range backends(dir) {
		t.Run(name, func(t *testing.T) {
			ok, err := repo.IsRepository(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRepository_StagedLifecycle(t *testing.T) {
	requireGit(t)

	for name := range backends("") {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			dir := initRepo(t)
			repo := backends(dir)[name]

			ok, err := repo.IsRepository(ctx)
			require.NoError(t, err)
			assert.True(t, ok)

			// Untracked files are not staged.
			createFile(t, dir, "main.go", "package main\n")
			staged, err := repo.HasStagedChanges(ctx)
			require.NoError(t, err)
			assert.False(t, staged)

			createFile(t, dir, "pkg/util.go", "package pkg\n")
			runGit(t, dir, "add", "main.go", "pkg/util.go")

			staged, err = repo.HasStagedChanges(ctx)
			require.NoError(t, err)
			assert.True(t, staged)

			files, err := repo.StagedFiles(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"main.go", "pkg/util.go"}, files)

			msg := "patch-fix: 🐛 null pointer crash\n\nGuard the nil map."
			require.NoError(t, repo.Commit(ctx, msg))

			assert.Equal(t, msg, lastCommitMessage(t, dir))

			staged, err = repo.HasStagedChanges(ctx)
			require.NoError(t, err)
			assert.False(t, staged)

			files, err = repo.StagedFiles(ctx)
			require.NoError(t, err)
			assert.Empty(t, files)
		})
	}
}

func TestCLI_CommitFailureCarriesGitOutput(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	dir := initRepo(t)
	createFile(t, dir, "a.txt", "a")
	runGit(t, dir, "add", "a.txt")
	runGit(t, dir, "commit", "-m", "initial")

	err := NewCLI(dir, "").Commit(ctx, "patch-chore: 🔧 nothing here")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Git error: ")
	assert.Contains(t, err.Error(), "nothing to commit")
}

func TestCLI_MissingBinary(t *testing.T) {
	repo := NewCLI(t.TempDir(), filepath.Join(t.TempDir(), "no-such-git"))

	_, err := repo.IsRepository(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Git error: running ")
}

func TestGoGit_CommitWithoutIdentity(t *testing.T) {
	requireGit(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	runGit(t, dir, "init")
	createFile(t, dir, "a.txt", "a")
	runGit(t, dir, "add", "a.txt")

	err := NewGoGit(dir).Commit(context.Background(), "patch-feat: ✨ first")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Author identity unknown")
}

func TestGoGit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoGit(t.TempDir()).IsRepository(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func lastCommitMessage(t *testing.T, dir string) string {
	t.Helper()
	cmd := exec.Command("git", "log", "-1", "--format=%B")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return trimTrailingNewlines(string(out))
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

func createFile(t *testing.T, dir, path string, content string) {
	t.Helper()
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
}
