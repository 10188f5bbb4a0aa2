package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/varalys/secretguard/internal/files"
)

// DefaultTimeout bounds every git invocation.
const DefaultTimeout = 30 * time.Second

// ErrNotFound is returned when the git binary is not on PATH.
var ErrNotFound = errors.New("git not found in PATH")

// CommandError reports a git command that exited non-zero. Status is -1 when
// the command was killed by the timeout.
type CommandError struct {
	Args   []string
	Status int
	Stderr string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.Status)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Client runs the git binary. The zero value runs in the current directory
// with DefaultTimeout.
type Client struct {
	Dir     string
	Timeout time.Duration
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// run executes git with args. A timed-out command is reported as status -1
// with empty output rather than as an error.
func (c *Client) run(ctx context.Context, args ...string) (int, string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	full := append([]string{"-c", "core.quotePath=false"}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Dir = c.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	log.Debug().Strs("args", args).Dur("took", time.Since(started)).Msg("git")

	if errors.Is(err, exec.ErrNotFound) {
		return 0, "", "", ErrNotFound
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Warn().Strs("args", args).Dur("timeout", c.timeout()).Msg("git command timed out")
		return -1, "", "", nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), nil
		}
		return 0, "", "", err
	}
	return 0, strings.TrimSpace(stdout.String()), "", nil
}

func (c *Client) lines(ctx context.Context, args ...string) ([]string, error) {
	status, out, stderr, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if status != 0 {
		return nil, &CommandError{Args: args, Status: status, Stderr: stderr}
	}
	return splitOutput(out), nil
}

func splitOutput(out string) []string {
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// ListStagedFiles returns paths added, copied, modified or renamed in the
// index, relative to the repository root.
func (c *Client) ListStagedFiles(ctx context.Context) ([]string, error) {
	return c.lines(ctx, "diff", "--cached", "--name-only", "--diff-filter=ACMR")
}

// ListTrackedFiles returns every path in the index.
func (c *Client) ListTrackedFiles(ctx context.Context) ([]string, error) {
	return c.lines(ctx, "ls-files")
}

// WalkDirectory lists the files below dir, skipping .git directories.
func (c *Client) WalkDirectory(ctx context.Context, dir string) ([]string, error) {
	return files.Walk(ctx, dir)
}

// IsIgnored asks git whether a file named pattern would be ignored, without
// consulting the index. Exit status 1 means "not ignored"; any other failure
// is an error.
func (c *Client) IsIgnored(ctx context.Context, pattern string) (bool, error) {
	args := []string{"check-ignore", "--no-index", "-q", pattern}
	status, _, stderr, err := c.run(ctx, args...)
	if err != nil {
		return false, err
	}
	switch status {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, &CommandError{Args: args, Status: status, Stderr: stderr}
	}
}
