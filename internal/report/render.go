package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/varalys/secretguard/internal/types"
)

// Printer renders scan and audit results as human-readable text. Whether
// colour is used is fixed when the Printer is created.
type Printer struct {
	w      io.Writer
	red    lipgloss.Style
	yellow lipgloss.Style
	green  lipgloss.Style
	cyan   lipgloss.Style
	bold   lipgloss.Style
}

// NewPrinter returns a Printer writing to w. With color false every style
// renders as plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		red:    r.NewStyle().Foreground(lipgloss.Color("1")),
		yellow: r.NewStyle().Foreground(lipgloss.Color("3")),
		green:  r.NewStyle().Foreground(lipgloss.Color("2")),
		cyan:   r.NewStyle().Foreground(lipgloss.Color("6")),
		bold:   r.NewStyle().Bold(true),
	}
}

func (p *Printer) println(a ...any) {
	_, _ = fmt.Fprintln(p.w, a...)
}

func (p *Printer) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.w, format, a...)
}

// ScanBanner announces a content scan for mode.
func (p *Printer) ScanBanner(mode string) {
	p.println(p.bold.Render(fmt.Sprintf("▸ Secret scan (mode: %s)", mode)))
}

// NoFiles reports an empty candidate list.
func (p *Printer) NoFiles() {
	p.println(p.green.Render("No files to scan."))
}

// Scanning reports how many candidate files will be examined.
func (p *Printer) Scanning(n int) {
	p.printf("  Scanning %d file(s)...\n\n", n)
}

// FileFindings lists sensitive filenames under a single header. Nothing is
// printed when there are none.
func (p *Printer) FileFindings(findings []types.FileFinding) {
	for i, f := range findings {
		if i == 0 {
			p.println()
			p.println(p.bold.Inherit(p.red).Render("▸ Sensitive files detected:"))
		}
		p.printf("  %s %s  (matches: %s)\n", p.red.Render("✗"), p.cyan.Render(f.Path), f.Pattern)
	}
}

// ContentHeader announces the content pass.
func (p *Printer) ContentHeader() {
	p.println()
	p.println(p.bold.Render("▸ Scanning file content for secret patterns..."))
}

// ContentFindings lists content matches grouped by file, printing each file
// name once above its findings, then a count when any were found.
func (p *Printer) ContentFindings(findings []types.ContentFinding) {
	current := ""
	for _, f := range findings {
		if f.Path != current {
			p.println()
			p.printf("  %s\n", p.cyan.Render(f.Path))
			current = f.Path
		}
		p.printf("    %s L%d: %s %s\n", p.red.Render("✗"), f.Line, p.yellow.Render("["+f.Label+"]"), f.Redacted)
	}
	if len(findings) > 0 {
		p.println()
		p.println(p.bold.Inherit(p.red).Render(fmt.Sprintf("▸ %d potential secret(s) in file content", len(findings))))
	}
}

// Verdict prints the final line of a scan.
func (p *Printer) Verdict(total int) {
	p.println()
	if total == 0 {
		p.println(p.bold.Inherit(p.green).Render("✓ No secrets detected"))
		return
	}
	p.println(p.bold.Inherit(p.red).Render(fmt.Sprintf("⚠ %d finding(s) — review before committing", total)))
}

// Audit renders ignore-file coverage and a summary line.
func (p *Printer) Audit(res types.AuditResult) {
	p.println(p.bold.Render("▸ .gitignore coverage audit"))
	p.println()
	for _, e := range res.Entries {
		if e.Covered {
			p.printf("  %s %s — ignored\n", p.green.Render("✓"), e.Pattern)
			continue
		}
		p.printf("  %s %s — %s\n", p.red.Render("✗"), e.Pattern, p.yellow.Render("NOT in .gitignore"))
	}
	p.println()
	if missing := res.Missing(); missing > 0 {
		p.println(p.yellow.Render(fmt.Sprintf("%d pattern(s) not covered by .gitignore", missing)))
		return
	}
	p.println(p.green.Render("All common sensitive patterns are covered by .gitignore"))
}

// Fixed lists patterns appended to the ignore file.
func (p *Printer) Fixed(file string, patterns []string) {
	if len(patterns) == 0 {
		return
	}
	p.println()
	p.printf("Added %d pattern(s) to %s:\n", len(patterns), file)
	for _, pat := range patterns {
		p.printf("  %s %s\n", p.green.Render("+"), pat)
	}
}

// Catalog lists the filename patterns, content labels and audit globs.
func (p *Printer) Catalog(filenames, labels, audit []string) {
	sections := []struct {
		title string
		items []string
	}{
		{"Sensitive filename patterns", filenames},
		{"Content patterns", labels},
		{".gitignore audit patterns", audit},
	}
	for i, s := range sections {
		if i > 0 {
			p.println()
		}
		p.println(p.bold.Render(fmt.Sprintf("▸ %s (%d)", s.title, len(s.items))))
		for _, it := range s.items {
			p.printf("  %s\n", it)
		}
	}
}

// ExitCode maps a finding or missing-coverage count to the process status:
// 0 when n is zero, 1 otherwise.
func ExitCode(n int) int {
	if n == 0 {
		return 0
	}
	return 1
}
