package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabledemo/internal/config"
	"tabledemo/internal/demo"
	"tabledemo/internal/env"
	"tabledemo/internal/logging"
	"tabledemo/internal/render"
)

var (
	// Global flags
	verbose    bool
	configPath string
	style      string

	// Environment source; tests swap in an env.MapReader.
	environ env.Reader = env.OSReader{}

	// Logger
	logger *zap.Logger

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tabledemo",
	Short: "Print a labeled greeting table and the SECRET value",
	Long: `tabledemo prints a 2x3 table with row labels l, r and column labels H, e, l,
then prints the value of the SECRET environment variable, or a fixed message
when SECRET is not set.

Example:
  tabledemo
  SECRET=hunter2 tabledemo --style border`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath, environ)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("style") {
			cfg.Table.Style = style
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("config", configPath),
			zap.String("style", cfg.Table.Style),
			zap.String("env_var", cfg.Secret.EnvVar))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&style, "style", string(render.StylePlain), "Table style: plain or border")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDemo prints the table and the configuration value
func runDemo(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tableStyle, err := cfg.TableStyle()
	if err != nil {
		return err
	}
	renderer, err := render.New(tableStyle)
	if err != nil {
		return err
	}

	runner := demo.NewRunner(cmd.OutOrStdout(), environ,
		demo.WithRenderer(renderer),
		demo.WithSecret(cfg.Secret),
		demo.WithLogger(logging.For(logger, logging.CategoryRunner)),
	)
	return runner.Run(ctx)
}
