// Package cli implements the greenhaul command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/greenhaul/emissions/internal/config"
)

// rootOptions carries the resolved configuration from the root command to
// its subcommands.
type rootOptions struct {
	configPath string
	logLevel   string

	cfg config.Config
}

// NewRootCmd creates the greenhaul root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "greenhaul",
		Short: "Delivery-trip emissions analysis",
		Long: `greenhaul turns raw delivery-trip location records into sustainability
metrics: per-trip geodesic distance, estimated CO2 emissions, and
electric-vehicle conversion suitability.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Logging.Level = opts.logLevel
			}
			opts.cfg = cfg
			log = newLogger(cfg.Logging.Level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newReportCmd(opts))

	return cmd
}

// Execute runs the root command and logs the failure, if any.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
