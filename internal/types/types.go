package types

// Finding is a single reported match of a sensitive pattern, either on a
// file's name or inside its content.
type Finding interface {
	FindingPath() string
}

// FileFinding reports a path whose name matches a sensitive-filename pattern.
// Pattern holds the source text of the first pattern that matched.
type FileFinding struct {
	Path    string `json:"path"`
	Pattern string `json:"pattern"`
}

func (f FileFinding) FindingPath() string { return f.Path }

// ContentFinding reports a content pattern match at a 1-based line. Redacted
// is the display-safe form of the matched text; the raw match is never kept.
type ContentFinding struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Label    string `json:"label"`
	Redacted string `json:"redacted"`
}

func (f ContentFinding) FindingPath() string { return f.Path }

// ScanResult holds the findings of one scan invocation, in input file order
// then pattern declaration order.
type ScanResult struct {
	Files   []FileFinding    `json:"files"`
	Content []ContentFinding `json:"content"`
}

// Total returns the number of reported findings across both passes.
func (r ScanResult) Total() int {
	return len(r.Files) + len(r.Content)
}

// Findings returns every finding, filename findings first.
func (r ScanResult) Findings() []Finding {
	out := make([]Finding, 0, r.Total())
	for _, f := range r.Files {
		out = append(out, f)
	}
	for _, f := range r.Content {
		out = append(out, f)
	}
	return out
}

// Coverage records whether a hypothetical file named Pattern would be
// excluded from version control.
type Coverage struct {
	Pattern string `json:"pattern"`
	Covered bool   `json:"covered"`
}

// AuditResult is the outcome of an ignore-file coverage audit.
type AuditResult struct {
	Entries []Coverage `json:"entries"`
}

// Missing returns how many audited patterns are not covered.
func (r AuditResult) Missing() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Covered {
			n++
		}
	}
	return n
}

// MissingPatterns returns the uncovered patterns in audit order.
func (r AuditResult) MissingPatterns() []string {
	var out []string
	for _, e := range r.Entries {
		if !e.Covered {
			out = append(out, e.Pattern)
		}
	}
	return out
}
