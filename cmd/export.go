package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"minimcu/output"
	"minimcu/storage"
)

var (
	exportFormat string
	exportOutput string
	exportUID    string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export check-up records from SQLite to Excel/CSV",
	Long: `Export check-up records joined with employee identity.

Numeric columns are written with two decimals and date columns as
YYYY-MM-DD, so exported files can be re-imported or handed to managers.
Output format can be selected explicitly via --format or inferred from the
output extension.`,
	Example: `
  # Export all check-ups to Excel
  minimcu export --output ./medical_checkup_data.xlsx

  # Export one employee's history to CSV
  minimcu export --uid 6e1f6c9a-0f3e-4c66-9a1c-1f2d3e4a5b6c --output ./history.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		store, _, err := openStore(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var details []storage.CheckupDetail
		if uid := strings.TrimSpace(exportUID); uid != "" {
			details, err = store.CheckupsByUID(uid)
		} else {
			details, err = store.ListCheckups()
		}
		if err != nil {
			return err
		}

		if err := writer.Write(exportOutput, details); err != nil {
			return err
		}
		fmt.Printf("Export completed. Rows: %d, Format: %s, File: %s\n", len(details), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "excel"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportUID, "uid", "", "Export only the given employee UID")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")

	_ = exportCmd.MarkFlagRequired("output")
}
