package main

import (
	"fmt"
	"os"

	"wallet_intel/internal/config"
	"wallet_intel/internal/pkg/logger"
	"wallet_intel/internal/pkg/metrics"
	"wallet_intel/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions are shared by every subcommand.
type rootOptions struct {
	configPath string
	cfg        *config.Config
	zapLogger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "wallet_intel",
		Short:         "Stacks wallet intelligence reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			zapLogger, err := logger.Init(cfg.Logging.Level)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.zapLogger = zapLogger
			metrics.MustRegisterMetrics()
			zapLogger.Debug("Configuration loaded", zap.String("path", opts.configPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.zapLogger != nil {
				_ = opts.zapLogger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config",
		utils.GetEnv(config.EnvConfigPath, config.DefaultConfigPath), "path to the YAML configuration file")

	cmd.AddCommand(newServeCmd(opts), newAnalyzeCmd(opts))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wallet_intel: %v\n", err)
		os.Exit(1)
	}
}
