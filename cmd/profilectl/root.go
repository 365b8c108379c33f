package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/config"
	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/logging"
	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/report"
)

// version is set at link time.
var version = "dev" //nolint:gochecknoglobals // set by -ldflags

// app carries the persistent flags and the state set up before each command.
type app struct {
	cfgFile  string
	format   string
	out      string
	logLevel string

	cfg *config.Config
	log hclog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "profilectl",
		Short: "Edit and inspect segmented cell-outline profiles",
		Long: `profilectl reads a segmented profile document (JSON or YAML, "-" for stdin),
applies one operation and writes the result to stdout or --out.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.profilectl.yaml, then $HOME/.profilectl.yaml)")
	pf.StringVarP(&a.format, "format", "f", "", "document format for stdin and stdout: json or yaml")
	pf.StringVarP(&a.out, "out", "o", "", "write the result to this file instead of stdout")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")

	root.AddCommand(
		a.inspectCmd(),
		a.validateCmd(),
		a.startFromCmd(),
		a.offsetCmd(),
		a.reverseCmd(),
		a.interpolateCmd(),
		a.mergeCmd(),
		a.unmergeCmd(),
		a.splitCmd(),
		a.updateCmd(),
		a.lockCmd(),
		a.clearCmd(),
		a.frankenCmd(),
		a.compareCmd(),
		versionCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log, cmd.ErrOrStderr())
	report.SetColor(cfg.Color)
	a.log.Trace("configuration loaded", "format", cfg.Format, "config", a.cfgFile)

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "profilectl %s\n", version)
		},
	}
}
