package secretguard

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

func pickDuration(cli, local, global, def time.Duration) time.Duration {
	for _, d := range []time.Duration{cli, local, global} {
		if d > 0 {
			return d
		}
	}
	return def
}

// colorEnabled reports whether w is a terminal that should get ANSI colour.
// NO_COLOR and TERM=dumb turn it off, as does the --no-color setting.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
