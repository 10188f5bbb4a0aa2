package detectors

import "github.com/dlclark/regexp2"

// sensitiveFiles are searched against the whole path, case-insensitively.
// The .env.* rule needs a negative lookahead, which RE2 cannot express.
var sensitiveFiles = []string{
	`\.env$`,
	`\.env\.(?!example|sample|template|dist|test|bak)`,
	`\.pem$`,
	`\.key$`,
	`\.p12$`,
	`\.pfx$`,
	`\.jks$`,
	`\.keystore$`,
	`credentials\.json$`,
	`service[-_]?account.*\.json$`,
	`\.htpasswd$`,
	`\.netrc$`,
	`\.pgpass$`,
	`id_rsa$`,
	`id_ed25519$`,
	`id_ecdsa$`,
	`id_dsa$`,
	`\.secret$`,
	`token\.json$`,
	`secrets\.ya?ml$`,
	`vault\.ya?ml$`,
	`\.boto$`,
	`\.s3cfg$`,
	`gcloud.*credentials`,
	`firebase.*\.json$`,
	`kubeconfig$`,
}

// FilenamePattern is a compiled case-insensitive path pattern.
type FilenamePattern struct {
	re *regexp2.Regexp
}

// String returns the pattern source as declared.
func (p FilenamePattern) String() string { return p.re.String() }

// Match reports whether the pattern occurs anywhere in path.
func (p FilenamePattern) Match(path string) bool {
	ok, err := p.re.MatchString(path)
	return err == nil && ok
}

var filenamePatterns = compileFilenames(sensitiveFiles)

func compileFilenames(exprs []string) []FilenamePattern {
	out := make([]FilenamePattern, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, FilenamePattern{re: regexp2.MustCompile(e, regexp2.IgnoreCase)})
	}
	return out
}

// Filenames returns the sensitive-filename patterns in declaration order.
func Filenames() []FilenamePattern {
	return append([]FilenamePattern(nil), filenamePatterns...)
}
