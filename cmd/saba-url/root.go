package main

import (
	"io"

	"github.com/jongio/saba-url/cliout"
	"github.com/jongio/saba-url/logutil"
	"github.com/jongio/saba-url/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalOptions struct {
	output         string
	color          string
	logLevel       string
	debug          bool
	structuredLogs bool
	noColor        bool
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json, yaml)")
	fs.StringVar(&opts.color, "color", "auto", "Colored output (auto, always, never)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides --debug")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.structuredLogs, "structured-logs", false, "Write logs as JSON")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output (same as --color never)")
}

// apply configures the output and logging packages from the parsed flags.
// Logs are written to logOut.
func (o *globalOptions) apply(logOut io.Writer) error {
	if err := cliout.SetFormat(o.output); err != nil {
		return err
	}
	color := o.color
	if o.noColor {
		color = "never"
	}
	if err := cliout.SetColorMode(color); err != nil {
		return err
	}

	logutil.SetupLoggerWithWriter(logOut, o.debug, o.structuredLogs)
	if o.logLevel != "" {
		logutil.SetLevel(logutil.ParseLevel(o.logLevel))
	}
	logutil.Debug("logging configured", "debug", logutil.IsDebugEnabled(), "output", o.output, "color", color)
	return nil
}

func newRootCommand(info *version.Info) *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "saba-url",
		Short:         "Split http:// URLs into host, port, path and search part",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd.ErrOrStderr())
		},
	}
	bindGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		newParseCommand(),
		version.NewCommand(info),
	)
	return cmd
}
