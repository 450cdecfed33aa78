package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const envPrefix = "MYGREP"

// Usage: echo <input_text> | mygrep -E <pattern> [-r] [-q] [paths...]
func main() {
	found, err := execute(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if found {
		os.Exit(0)
	}
	os.Exit(1)
}

func registerFlags(flags *flag.FlagSet) {
	flags.StringP("regexp", "E", "", "Pattern to search for.")
	flags.BoolP("recursive", "r", false, "Read all files under each directory, recursively.")
	flags.BoolP("quiet", "q", false, "Do not print matching lines, only set the exit status.")
	flags.String("log_level", "warn", "Log level, one of [debug, info, warn, error].")
}

// execute runs one grep invocation and reports whether any line matched.
func execute(args []string, stdin io.Reader, stdout io.Writer) (bool, error) {
	conf := viper.New()
	var found bool

	cmd := &cobra.Command{
		Use:           "mygrep -E <pattern> [paths...]",
		Short:         "Search lines for a pattern in a small regular expression dialect",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if err := initLogger(conf.GetString("log_level")); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			g := &grep{
				pattern:   conf.GetString("regexp"),
				recursive: conf.GetBool("recursive"),
				quiet:     conf.GetBool("quiet"),
				paths:     paths,
				stdin:     cmd.InOrStdin(),
				out:       cmd.OutOrStdout(),
			}
			var err error
			found, err = g.run()
			return err
		},
	}
	registerFlags(cmd.Flags())
	if err := cmd.MarkFlagRequired("regexp"); err != nil {
		return false, err
	}
	if err := conf.BindPFlags(cmd.Flags()); err != nil {
		return false, errors.Wrapf(err, "binding flags")
	}
	conf.SetEnvPrefix(envPrefix)
	conf.AutomaticEnv()

	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	err := cmd.Execute()
	return found, err
}

type grep struct {
	pattern   string
	recursive bool
	quiet     bool
	paths     []string
	stdin     io.Reader
	out       io.Writer
}

// run searches stdin or every path. A bad pattern stops the run before any
// input is read; an unreadable path is reported and the remaining paths are
// still searched, with every such error returned at the end.
func (g *grep) run() (bool, error) {
	lg := logger.Named("main")
	lg.Debug("starting", zap.String("pattern", g.pattern), zap.Strings("paths", g.paths))

	if _, err := compile(g.pattern); err != nil {
		return false, err
	}

	// No paths: read stdin
	if len(g.paths) == 0 {
		return scanAndPrint(g.out, "stdin", g.stdin, g.pattern, false, g.quiet)
	}

	multi := g.recursive || len(g.paths) > 1
	foundAny := false
	var errs error
	for _, root := range g.paths {
		var found bool
		var err error
		if g.recursive {
			found, err = g.walk(root)
		} else {
			found, err = g.scanFile(root, multi)
		}
		foundAny = foundAny || found
		if err != nil {
			if isCompileError(err) {
				return foundAny, err
			}
			lg.Error("search failed", zap.String("path", root), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return foundAny, errs
}

func (g *grep) walk(root string) (bool, error) {
	foundAny := false
	var errs error
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "walking %s", path))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		found, err := g.scanFile(path, true)
		foundAny = foundAny || found
		if err != nil {
			if isCompileError(err) {
				return err
			}
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err != nil {
		return foundAny, err
	}
	return foundAny, errs
}

func (g *grep) scanFile(path string, addPrefix bool) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return scanAndPrint(g.out, path, f, g.pattern, addPrefix, g.quiet)
}
