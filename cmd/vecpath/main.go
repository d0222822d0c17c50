// Command vecpath inspects and edits SVG path data.
//
// Path data is read from the arguments, joined by spaces, or from standard
// input if there are none. Results are written as absolute path data, one
// path per line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/vecpath"
	"honnef.co/go/vecpath/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	verbose    bool
	precision  int

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{precision: -1}
	root := &cobra.Command{
		Use:          "vecpath",
		Short:        "Inspect and edit SVG path data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			vecpath.SetLogger(nil)
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "read settings from a TOML or YAML `file`")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages to stderr")
	f.IntVar(&opts.precision, "precision", -1, "maximum number of decimals in output, 0 for as many as needed")

	root.AddCommand(
		newFormatCmd(opts),
		newTransformCmd(opts),
		newHandlesCmd(opts),
		newJoinCmd(opts),
		newSplitCmd(opts),
		newFitCmd(opts),
		newBoundsCmd(opts),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// logger.
func (opts *options) setup(cmd *cobra.Command) error {
	opts.cfg = config.Default()
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
	}
	if opts.precision >= 0 {
		opts.cfg.Format.MaxPrecision = opts.precision
	}
	if opts.verbose {
		opts.cfg.Log.Level = "debug"
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	lvl, err := opts.cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	vecpath.SetLogger(slog.New(h))
	return nil
}

// input returns the path data given as arguments, or read from stdin.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading path data: %w", err)
	}
	return string(b), nil
}

func (opts *options) readPath(cmd *cobra.Command, args []string) (vecpath.Path, error) {
	s, err := input(cmd, args)
	if err != nil {
		return vecpath.Path{}, err
	}
	return vecpath.ParsePath(strings.TrimSpace(s), opts.cfg.ParseOptions())
}

func (opts *options) writePath(cmd *cobra.Command, p vecpath.Path) error {
	w := cmd.OutOrStdout()
	if err := vecpath.WritePath(w, p, opts.cfg.FormatOptions()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
