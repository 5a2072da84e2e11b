package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lupppig/dchunk/fastcdc"
	"github.com/lupppig/dchunk/internal/logger"
	"github.com/spf13/cobra"
)

var gearOut string

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Generate a random gear table",
	Long: `Generate a fresh 256-entry gear table from the system's entropy source and
write it as JSON. Chunking with a private table produces boundaries that an
outside party cannot predict, at the cost of manifests only verifying
against the same table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := fastcdc.GenerateTable()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return err
		}

		if gearOut == "" || gearOut == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(gearOut, data, 0644); err != nil {
			return fmt.Errorf("write gear table: %w", err)
		}

		logger.FromContext(cmd.Context()).Info("Gear table written", "path", gearOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gearCmd)

	gearCmd.Flags().StringVarP(&gearOut, "out", "o", "", `output path for the JSON table ("-" for stdout)`)
}
