package secretguard

import (
	"github.com/spf13/cobra"
	"github.com/varalys/secretguard/internal/engine"
)

func (a *app) newGitignoreCmd() *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "gitignore",
		Short: "Audit .gitignore coverage of common sensitive file names",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMode(cmd.Context(), engine.ModeGitignore, "", fix)
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "append uncovered patterns to .gitignore")
	return cmd
}
