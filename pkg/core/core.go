package core

import (
	"context"

	"github.com/varalys/secretguard/internal/engine"
	"github.com/varalys/secretguard/internal/redact"
	"github.com/varalys/secretguard/internal/report"
	"github.com/varalys/secretguard/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Finding        = types.Finding
	FileFinding    = types.FileFinding
	ContentFinding = types.ContentFinding
	Result         = types.ScanResult
	AuditResult    = types.AuditResult
	Collaborator   = engine.Collaborator
)

// ScanFiles runs the filename and content passes over paths read from the
// local disk. Unreadable and binary files are skipped.
func ScanFiles(paths []string) Result {
	return engine.Scan(paths, engine.OSFileSystem{})
}

// Audit checks the built-in sensitive globs against c's ignore rules.
func Audit(ctx context.Context, c Collaborator) (AuditResult, error) {
	return engine.Audit(ctx, c)
}

// Redact returns the display-safe form of a matched secret.
func Redact(s string) string { return redact.Shorten(s) }

// ExitCode maps a finding count to the CLI exit status.
func ExitCode(n int) int { return report.ExitCode(n) }
