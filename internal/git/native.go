package git

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/rs/zerolog/log"
	"github.com/varalys/secretguard/internal/files"
)

// Native answers the same questions as Client using go-git, so no git
// binary is needed. The repository is discovered from Dir upwards and opened
// on first use. Each call is bounded by Timeout (DefaultTimeout when zero).
type Native struct {
	Dir     string
	Timeout time.Duration

	once    sync.Once
	repo    *gogit.Repository
	wt      *gogit.Worktree
	openErr error
	matcher gitignore.Matcher
}

func (n *Native) open() error {
	n.once.Do(func() {
		dir := n.Dir
		if dir == "" {
			dir = "."
		}
		repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			n.openErr = fmt.Errorf("open repository at %s: %w", dir, err)
			return
		}
		wt, err := repo.Worktree()
		if err != nil {
			n.openErr = fmt.Errorf("open worktree: %w", err)
			return
		}
		n.repo, n.wt = repo, wt
	})
	return n.openErr
}

func (n *Native) timeout() time.Duration {
	if n.Timeout > 0 {
		return n.Timeout
	}
	return DefaultTimeout
}

// do runs fn under the call timeout. go-git takes no context, so on expiry
// fn is abandoned and its results are never read.
func (n *Native) do(ctx context.Context, op string, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout())
	defer cancel()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		log.Warn().Str("op", op).Dur("timeout", n.timeout()).Msg("git operation timed out")
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// ListStagedFiles returns index entries whose staging status is added,
// copied, modified or renamed, sorted by path.
func (n *Native) ListStagedFiles(ctx context.Context) ([]string, error) {
	var out []string
	err := n.do(ctx, "worktree status", func() error {
		if err := n.open(); err != nil {
			return err
		}
		status, err := n.wt.Status()
		if err != nil {
			return fmt.Errorf("worktree status: %w", err)
		}
		var paths []string
		for path, st := range status {
			switch st.Staging {
			case gogit.Added, gogit.Copied, gogit.Modified, gogit.Renamed:
				paths = append(paths, path)
			}
		}
		sort.Strings(paths)
		out = paths
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListTrackedFiles returns every path recorded in the index once, even when
// a merge conflict leaves several stages for it.
func (n *Native) ListTrackedFiles(ctx context.Context) ([]string, error) {
	var out []string
	err := n.do(ctx, "read index", func() error {
		if err := n.open(); err != nil {
			return err
		}
		idx, err := n.repo.Storer.Index()
		if err != nil {
			return fmt.Errorf("read index: %w", err)
		}
		out = uniqueEntryNames(idx.Entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func uniqueEntryNames(entries []*index.Entry) []string {
	seen := make(map[string]bool, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e.Name)
	}
	return out
}

// WalkDirectory lists the files below dir, skipping .git directories.
func (n *Native) WalkDirectory(ctx context.Context, dir string) ([]string, error) {
	return files.Walk(ctx, dir)
}

// IsIgnored matches a file named pattern at the repository root against the
// system, global and repository ignore rules, later sources taking
// precedence.
func (n *Native) IsIgnored(ctx context.Context, pattern string) (bool, error) {
	if n.matcher == nil {
		var m gitignore.Matcher
		err := n.do(ctx, "read ignore files", func() error {
			if err := n.open(); err != nil {
				return err
			}
			var ps []gitignore.Pattern
			root := osfs.New("/")
			if sys, err := gitignore.LoadSystemPatterns(root); err == nil {
				ps = append(ps, sys...)
			}
			if global, err := gitignore.LoadGlobalPatterns(root); err == nil {
				ps = append(ps, global...)
			}
			repoPatterns, err := gitignore.ReadPatterns(n.wt.Filesystem, nil)
			if err != nil {
				return fmt.Errorf("read ignore files: %w", err)
			}
			m = gitignore.NewMatcher(append(ps, repoPatterns...))
			return nil
		})
		if err != nil {
			return false, err
		}
		n.matcher = m
	}
	return n.matcher.Match(strings.Split(pattern, "/"), false), nil
}
