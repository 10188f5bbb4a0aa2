package engine

import (
	"github.com/rs/zerolog/log"
	"github.com/varalys/secretguard/internal/detectors"
	"github.com/varalys/secretguard/internal/redact"
	"github.com/varalys/secretguard/internal/types"
)

// MaxHitsPerLabel caps how many matches of one label are reported per file.
// Matches past the cap are dropped and not counted.
const MaxHitsPerLabel = 5

// MatchFilenames reports at most one finding per path: the first filename
// pattern, in declaration order, that occurs anywhere in the path.
func MatchFilenames(paths []string) []types.FileFinding {
	patterns := detectors.Filenames()
	var out []types.FileFinding
	for _, p := range paths {
		for _, pat := range patterns {
			if pat.Match(p) {
				out = append(out, types.FileFinding{Path: p, Pattern: pat.String()})
				break
			}
		}
	}
	return out
}

// MatchContent scans the text of each regular, non-binary file for content
// patterns. Files that cannot be read are skipped.
func MatchContent(paths []string, fsys FileSystem) []types.ContentFinding {
	var out []types.ContentFinding
	for _, p := range paths {
		lines, ok := readLines(fsys, p)
		if !ok {
			continue
		}
		out = append(out, matchLines(p, lines)...)
	}
	return out
}

func readLines(fsys FileSystem, path string) ([]string, bool) {
	info, err := fsys.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	b, err := fsys.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
		return nil, false
	}
	if looksBinary(b) {
		log.Debug().Str("path", path).Msg("skipping binary file")
		return nil, false
	}
	return splitLines(decodeText(b)), true
}

func matchLines(path string, lines []string) []types.ContentFinding {
	var out []types.ContentFinding
	for _, pat := range detectors.Contents() {
		hits := 0
	scan:
		for i, line := range lines {
			for _, m := range pat.Re.FindAllString(line, -1) {
				if hits >= MaxHitsPerLabel {
					break scan
				}
				out = append(out, types.ContentFinding{
					Path:     path,
					Line:     i + 1,
					Label:    pat.Label,
					Redacted: redact.Shorten(m),
				})
				hits++
			}
		}
	}
	return out
}

// Scan runs the filename pass and then the content pass over paths.
func Scan(paths []string, fsys FileSystem) types.ScanResult {
	return types.ScanResult{
		Files:   MatchFilenames(paths),
		Content: MatchContent(paths, fsys),
	}
}
