package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/limaJavier/sectionplanner/internal/config"
	"github.com/limaJavier/sectionplanner/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit code used when the produced combinations fail verification
const verificationExitCode = 15

var errVerification = errors.New("generated combinations failed verification")

var (
	configPath string
	envFiles   []string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sectionplanner",
	Short: "Builds every conflict-free schedule out of a selection of course sections",
	Long: `sectionplanner takes the sections a student is considering, groups them by course
and lists every combination that takes exactly one section of each course
without two sessions overlapping.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFiles...); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		log = logger.Configure(logger.Config{
			Level:  logger.LogLevel(cfg.Log.Level),
			Pretty: cfg.Log.Pretty,
		})
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errVerification) {
			os.Exit(verificationExitCode)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file; defaults are used when empty")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", []string{".env"}, "Environment files to load before reading the configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Overrides the configured log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(schedulesCmd)
}
