package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the caller's global git configuration out of the test.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

func initRepo(t *testing.T) (string, func(args ...string)) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	isolate(t)
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, string(out))
		}
	}
	run("init", ".")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "tester")
	run("config", "commit.gpgsign", "false")
	return dir, run
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestClient_StagedAndTracked(t *testing.T) {
	dir, run := initRepo(t)
	writeFile(t, dir, "committed.txt", "one")
	writeFile(t, dir, "gone.txt", "bye")
	run("add", ".")
	run("commit", "-m", "init")

	writeFile(t, dir, "committed.txt", "two")
	writeFile(t, dir, "app/.env", "password=\"supersecretvalue\"")
	writeFile(t, dir, "unstaged.txt", "x")
	run("add", "committed.txt", "app/.env")
	run("rm", "-q", "gone.txt")

	c := &Client{Dir: dir}
	ctx := context.Background()

	staged, err := c.ListStagedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/.env", "committed.txt"}, staged)

	tracked, err := c.ListTrackedFiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/.env", "committed.txt"}, tracked)
}

func TestClient_NoStagedChanges(t *testing.T) {
	dir, run := initRepo(t)
	writeFile(t, dir, "a.txt", "a")
	run("add", ".")
	run("commit", "-m", "init")

	staged, err := (&Client{Dir: dir}).ListStagedFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestClient_IsIgnored(t *testing.T) {
	dir, _ := initRepo(t)
	writeFile(t, dir, ".gitignore", ".env\nsecrets.y*ml\n")

	c := &Client{Dir: dir}
	ctx := context.Background()
	for pattern, want := range map[string]bool{
		".env":         true,
		"secrets.yaml": true,
		"*.pem":        false,
	} {
		got, err := c.IsIgnored(ctx, pattern)
		require.NoError(t, err, pattern)
		assert.Equal(t, want, got, pattern)
	}
}

func TestClient_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	isolate(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(t.TempDir()))
	c := &Client{Dir: t.TempDir()}
	_, err := c.ListTrackedFiles(context.Background())
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.NotZero(t, cmdErr.Status)
}

func TestClient_TimeoutIsFailedCall(t *testing.T) {
	dir, _ := initRepo(t)
	c := &Client{Dir: dir, Timeout: time.Nanosecond}
	status, out, _, err := c.run(context.Background(), "ls-files")
	require.NoError(t, err)
	assert.Equal(t, -1, status)
	assert.Empty(t, out)

	_, err = c.ListTrackedFiles(context.Background())
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, -1, cmdErr.Status)
}

func TestClient_GitMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := (&Client{}).ListStagedFiles(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSplitOutput(t *testing.T) {
	assert.Nil(t, splitOutput(""))
	assert.Equal(t, []string{"a", "b c"}, splitOutput("a\nb c"))
}
