package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/varalys/secretguard/internal/detectors"
	"github.com/varalys/secretguard/internal/files"
	"github.com/varalys/secretguard/internal/report"
	"github.com/varalys/secretguard/internal/types"
)

// Mode selects which candidate files are examined.
type Mode string

const (
	ModeStaged    Mode = "staged"
	ModeTracked   Mode = "tracked"
	ModePath      Mode = "path"
	ModeGitignore Mode = "gitignore"
)

// Modes lists the accepted modes in the order they are documented.
var Modes = []Mode{ModeStaged, ModeTracked, ModePath, ModeGitignore}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", usagef("unknown mode %q", s)
}

// Collaborator supplies candidate files and ignore checks. The core never
// talks to version control directly.
type Collaborator interface {
	// ListStagedFiles returns files added, copied, modified or renamed in the
	// staged change set.
	ListStagedFiles(ctx context.Context) ([]string, error)
	// ListTrackedFiles returns every file under version control.
	ListTrackedFiles(ctx context.Context) ([]string, error)
	// WalkDirectory returns the files below dir, skipping .git directories.
	WalkDirectory(ctx context.Context, dir string) ([]string, error)
	// IsIgnored reports whether a file named pattern would be excluded from
	// version control.
	IsIgnored(ctx context.Context, pattern string) (bool, error)
}

// Config controls a single run.
type Config struct {
	Mode   Mode
	Target string // directory for ModePath; ignored otherwise

	IncludeGlobs string
	ExcludeGlobs string

	// Fix appends uncovered audit globs to the ignore file in Root.
	Fix  bool
	Root string

	// FS defaults to the local disk.
	FS FileSystem
}

// Run executes one dispatch of cfg.Mode and returns the number of findings
// (scan modes) or uncovered patterns (gitignore mode). Usage problems are
// reported as *UsageError before any collaborator call.
func Run(ctx context.Context, cfg Config, c Collaborator, p *report.Printer) (int, error) {
	if _, err := ParseMode(string(cfg.Mode)); err != nil {
		return 0, err
	}
	filter, err := newPathFilter(cfg.IncludeGlobs, cfg.ExcludeGlobs)
	if err != nil {
		return 0, err
	}
	if cfg.Mode == ModePath {
		if err := checkTarget(cfg.Target); err != nil {
			return 0, err
		}
	}
	if cfg.FS == nil {
		cfg.FS = OSFileSystem{}
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if cfg.Mode == ModeGitignore {
		return runAudit(ctx, cfg, c, p)
	}

	p.ScanBanner(string(cfg.Mode))
	paths, err := candidates(ctx, cfg, c)
	if err != nil {
		return 0, err
	}
	paths = filter.apply(paths)
	log.Debug().Str("mode", string(cfg.Mode)).Int("files", len(paths)).Msg("candidate files")
	if len(paths) == 0 {
		p.NoFiles()
		return 0, nil
	}
	p.Scanning(len(paths))

	fileFindings := MatchFilenames(paths)
	p.FileFindings(fileFindings)

	p.ContentHeader()
	contentFindings := MatchContent(paths, cfg.FS)
	p.ContentFindings(contentFindings)

	res := types.ScanResult{Files: fileFindings, Content: contentFindings}
	p.Verdict(res.Total())
	return res.Total(), nil
}

func checkTarget(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return usagef("'path' mode requires a directory argument")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return usagef("not a directory: %s", dir)
	}
	return nil
}

func candidates(ctx context.Context, cfg Config, c Collaborator) ([]string, error) {
	var (
		paths []string
		err   error
		op    string
	)
	switch cfg.Mode {
	case ModeStaged:
		op = "list staged files"
		paths, err = c.ListStagedFiles(ctx)
	case ModeTracked:
		op = "list tracked files"
		paths, err = c.ListTrackedFiles(ctx)
	case ModePath:
		op = "walk " + cfg.Target
		paths, err = c.WalkDirectory(ctx, cfg.Target)
	}
	if err != nil {
		return nil, &EnvironmentError{Op: op, Err: err}
	}
	return paths, nil
}

// Audit checks every audit glob against the collaborator's ignore rules.
func Audit(ctx context.Context, c Collaborator) (types.AuditResult, error) {
	var res types.AuditResult
	for _, g := range detectors.AuditGlobs() {
		ok, err := c.IsIgnored(ctx, g)
		if err != nil {
			return res, &EnvironmentError{Op: "check-ignore " + g, Err: err}
		}
		res.Entries = append(res.Entries, types.Coverage{Pattern: g, Covered: ok})
	}
	return res, nil
}

func runAudit(ctx context.Context, cfg Config, c Collaborator, p *report.Printer) (int, error) {
	res, err := Audit(ctx, c)
	if err != nil {
		return 0, err
	}
	p.Audit(res)
	if cfg.Fix {
		missing := res.MissingPatterns()
		for _, g := range missing {
			if err := files.AppendIgnore(cfg.Root, g); err != nil {
				return res.Missing(), fmt.Errorf("update .gitignore: %w", err)
			}
		}
		p.Fixed(filepath.Join(cfg.Root, ".gitignore"), missing)
	}
	return res.Missing(), nil
}
