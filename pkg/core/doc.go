// Package core provides a small, stable facade over secretguard's scanner for
// programs that want to embed it, such as editor plugins or custom hooks.
// It re-exports a narrow API surface so callers do not import internal
// packages.
//
// Example:
//
//	res := core.ScanFiles([]string{"app/.env", "main.go"})
//	if res.Total() > 0 {
//		_ = core.MarshalResult(os.Stdout, res)
//	}
//	os.Exit(core.ExitCode(res.Total()))
package core
