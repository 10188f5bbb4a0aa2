package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// pathFilter keeps candidates allowed by comma-separated include and
// exclude glob lists. An empty include list allows everything.
type pathFilter struct {
	includes []string
	excludes []string
}

func newPathFilter(include, exclude string) (pathFilter, error) {
	var f pathFilter
	var err error
	if f.includes, err = parseGlobsList(include); err != nil {
		return f, err
	}
	if f.excludes, err = parseGlobsList(exclude); err != nil {
		return f, err
	}
	return f, nil
}

func (f pathFilter) empty() bool {
	return len(f.includes) == 0 && len(f.excludes) == 0
}

func (f pathFilter) allowed(path string) bool {
	rp := filepath.ToSlash(path)
	if len(f.includes) > 0 && !matchAnyGlob(rp, f.includes) {
		return false
	}
	return !matchAnyGlob(rp, f.excludes)
}

func (f pathFilter) apply(paths []string) []string {
	if f.empty() {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.allowed(p) {
			out = append(out, p)
		}
	}
	return out
}

func parseGlobsList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, usagef("invalid glob %q", p)
		}
		out = append(out, p)
		if t := trimGlobPrefix(p); t != p {
			out = append(out, t)
		}
	}
	return out, nil
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
