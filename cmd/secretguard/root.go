package secretguard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/varalys/secretguard/internal/config"
	"github.com/varalys/secretguard/internal/engine"
	"github.com/varalys/secretguard/internal/git"
	"github.com/varalys/secretguard/internal/report"
)

const usageLine = "Usage: secretguard {staged|tracked|path <dir>|gitignore}"

// newCollaborator builds the git collaborator for a run. Tests replace it.
var newCollaborator = git.New

type app struct {
	stdout io.Writer
	stderr io.Writer

	flagNoColor bool
	flagVerbose bool
	flagTimeout time.Duration
	flagBackend string
	flagInclude string
	flagExclude string

	// status is the exit code of a successful dispatch.
	status int
}

// settings are the effective options after layering flags over config files.
type settings struct {
	color   bool
	timeout time.Duration
	backend string
	include string
	exclude string
}

// Execute runs the CLI and exits the process. It should be called by the
// main package.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns its exit status: 0 clean, 1
// findings or coverage gaps, 2 usage or environment errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		return a.fail(err)
	}
	return a.status
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "secretguard [staged|tracked|path <dir>|gitignore]",
		Short: "Catch secrets before they are committed",
		Long: "secretguard checks staged files, tracked files or a directory for sensitive " +
			"file names and secret-looking content, and audits .gitignore coverage. " +
			"Without a mode it scans staged files.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &engine.UsageError{Msg: fmt.Sprintf("unknown mode %q", args[0])}
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) { a.initLogger() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMode(cmd.Context(), engine.ModeStaged, "", false)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &engine.UsageError{Msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.BoolVar(&a.flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&a.flagVerbose, "verbose", "v", false, "debug logging on stderr")
	pf.DurationVar(&a.flagTimeout, "timeout", 0, "timeout for each git command (default 30s)")
	pf.StringVar(&a.flagBackend, "backend", "", "git access: exec (git binary) or native (go-git)")
	pf.StringVar(&a.flagInclude, "include", "", "comma-separated include globs")
	pf.StringVar(&a.flagExclude, "exclude", "", "comma-separated exclude globs")

	root.AddCommand(
		a.newScanCmd(engine.ModeStaged),
		a.newScanCmd(engine.ModeTracked),
		a.newScanCmd(engine.ModePath),
		a.newGitignoreCmd(),
		a.newPatternsCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) initLogger() {
	level := zerolog.WarnLevel
	if a.flagVerbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        a.stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !colorEnabled(a.stderr, a.flagNoColor),
	}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// resolve layers flags over the local and then the global config file.
func (a *app) resolve() (settings, error) {
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
		log.Debug().Str("file", config.GlobalPath()).Msg("loaded global config")
	} else if !errors.Is(err, config.ErrNotFound) {
		return settings{}, fmt.Errorf("global config: %w", err)
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
		log.Debug().Msg("loaded local config")
	} else if !errors.Is(err, config.ErrNotFound) {
		return settings{}, fmt.Errorf("local config: %w", err)
	}

	lt, err := lcfg.TimeoutDuration()
	if err != nil {
		return settings{}, fmt.Errorf("local config: %w", err)
	}
	gt, err := gcfg.TimeoutDuration()
	if err != nil {
		return settings{}, fmt.Errorf("global config: %w", err)
	}
	if a.flagTimeout < 0 {
		return settings{}, &engine.UsageError{Msg: "--timeout must not be negative"}
	}

	noColor := pickBool(a.flagNoColor, lcfg.NoColor, gcfg.NoColor)
	return settings{
		color:   colorEnabled(a.stdout, noColor),
		timeout: pickDuration(a.flagTimeout, lt, gt, git.DefaultTimeout),
		backend: pickString(a.flagBackend, lcfg.Backend, gcfg.Backend),
		include: pickString(a.flagInclude, lcfg.Include, gcfg.Include),
		exclude: pickString(a.flagExclude, lcfg.Exclude, gcfg.Exclude),
	}, nil
}

func (a *app) runMode(ctx context.Context, mode engine.Mode, target string, fix bool) error {
	s, err := a.resolve()
	if err != nil {
		return err
	}
	c, err := newCollaborator(s.backend, ".", s.timeout)
	if err != nil {
		return err
	}
	cfg := engine.Config{
		Mode:         mode,
		Target:       target,
		IncludeGlobs: s.include,
		ExcludeGlobs: s.exclude,
		Fix:          fix,
		Root:         ".",
	}
	n, err := engine.Run(ctx, cfg, c, report.NewPrinter(a.stdout, s.color))
	if err != nil {
		return err
	}
	a.status = report.ExitCode(n)
	return nil
}

// fail prints err to stderr and returns exit status 2. Usage errors are
// followed by the usage line.
func (a *app) fail(err error) int {
	fmt.Fprintf(a.stderr, "Error: %s\n", strings.TrimSpace(err.Error()))
	var uerr *engine.UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(a.stderr, usageLine)
	}
	return 2
}
