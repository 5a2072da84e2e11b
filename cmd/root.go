package cmd

import (
	"log/slog"

	"github.com/lupppig/dchunk/internal/config"
	"github.com/lupppig/dchunk/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logJSON    bool
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "dchunk",
	Short: "dchunk splits data into content-defined chunks and fingerprints them with a Merkle tree",
	Long: `dchunk is a command-line tool around two primitives: FastCDC content-defined
chunking and an ordered Merkle hash tree. It cuts any file or stream into
variable-size chunks at content-aligned boundaries, so edits only disturb
nearby chunks, and condenses the chunk sequence into a single verifiable
root digest. Chunk manifests written by dchunk can later be checked against
the data with the verify command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(configPath); err != nil {
			return err
		}

		cfg := config.GetConfig()
		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		l := logger.New(logger.Config{
			JSON:    logJSON || cfg.LogJSON,
			NoColor: noColor || cfg.NoColor,
			Level:   level,
		})
		cmd.SetContext(logger.WithContext(cmd.Context(), l))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}
