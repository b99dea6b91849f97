// ABOUTME: CLI commands for exporting and importing logged data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export logged data",
	Long: `Export all workout and nutrition logs in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  fitlog export json                # Export all data as JSON
  fitlog export json -o backup.json # Save to file
  fitlog export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = repo.ExportJSON()
		case "yaml":
			data, err = repo.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import logged data from JSON",
	Long: `Import workout and nutrition logs from a JSON backup file.

Workout rows that collide with an entry already logged for the same
user, date, and exercise are skipped; nutrition rows always import.

EXAMPLES:

  fitlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := repo.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
