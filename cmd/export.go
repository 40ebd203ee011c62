package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillbridge/skillbridge/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export a saved analysis as a shareable snapshot or Markdown report",
	Run: func(cmd *cobra.Command, _ []string) {
		runExport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("from", "", "path to a saved analysis JSON (required)")
	exportCmd.Flags().String("format", "json", "output format: json or markdown")
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	exportCmd.MarkFlagRequired("from")
}

func runExport(cmd *cobra.Command) {
	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")

	result, err := loadAnalysis(from)
	if err != nil {
		fail(err)
	}

	var data []byte
	switch format {
	case "json":
		snapshot := export.NewSnapshot(result, version)
		data, err = snapshot.JSON()
		if err != nil {
			fail(err)
		}
	case "markdown":
		data = []byte(export.Markdown(result))
	default:
		fail(fmt.Errorf("unknown format %q, expected json or markdown", format))
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Print(string(data))
		return
	}

	if err := confirmOverwrite(output); err != nil {
		fail(err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		fail(fmt.Errorf("writing export: %w", err))
	}
	fmt.Fprintf(os.Stderr, "Export written to %s\n", output)
}
