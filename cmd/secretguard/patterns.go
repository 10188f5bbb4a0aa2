package secretguard

import (
	"github.com/spf13/cobra"
	"github.com/varalys/secretguard/internal/detectors"
	"github.com/varalys/secretguard/internal/report"
)

func (a *app) newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List filename patterns, content labels and audited ignore globs",
		Args:  maxArgsUsage(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := a.resolve()
			if err != nil {
				return err
			}
			var names []string
			for _, p := range detectors.Filenames() {
				names = append(names, p.String())
			}
			p := report.NewPrinter(a.stdout, s.color)
			p.Catalog(names, detectors.Labels(), detectors.AuditGlobs())
			return nil
		},
	}
}
