package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.dw1.io/magicregexp/internal/logger"
)

var log = logger.GetLogger("app")

func newRootCmd() *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "magicregexp",
		Short: "Build regular expressions from readable pattern files",
		Long: `magicregexp renders patterns described in YAML or JSON pattern files
into regular expressions and tries them against sample input.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			if verbose {
				level = "debug"
			}

			if err := logger.Init(level); err != nil {
				return errors.Wrapf(err, "log level %q", level)
			}
			log.Debugf("Log level set to %s", level)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCmd(),
		newMatchCmd(),
		newKindsCmd(),
		newVersionCmd(),
	)

	return cmd
}
