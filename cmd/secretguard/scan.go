package secretguard

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varalys/secretguard/internal/engine"
)

var scanShort = map[engine.Mode]string{
	engine.ModeStaged:  "Scan files in the staged change set",
	engine.ModeTracked: "Scan every tracked file",
	engine.ModePath:    "Scan every file below a directory",
}

func (a *app) newScanCmd(mode engine.Mode) *cobra.Command {
	use := string(mode)
	if mode == engine.ModePath {
		use += " <dir>"
	}
	// Arguments past the target are ignored so hooks can pass extra words.
	return &cobra.Command{
		Use:   use,
		Short: scanShort[mode],
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if mode == engine.ModePath && len(args) > 0 {
				target = args[0]
			}
			return a.runMode(cmd.Context(), mode, target, false)
		},
	}
}

// maxArgsUsage is cobra.MaximumNArgs reporting a usage error.
func maxArgsUsage(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return &engine.UsageError{Msg: fmt.Sprintf("%s: unexpected argument %q", cmd.Name(), args[n])}
		}
		return nil
	}
}
