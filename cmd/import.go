package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"minimcu/importer"
)

var (
	importInputs []string
	importKind   string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import employee master data or check-up workbooks into SQLite",
	Long: `Read Excel workbooks, normalize each sheet, and persist results in SQLite.

Kinds:
- master:  employee identity sheets (one sheet per site). Rows are matched
  by (name, job title); re-importing the same workbook never creates
  duplicate employees. Returns aggregate counts plus a batch id.
- checkup: medical check-up measurements. Rows are matched to employees by
  an explicit uid column or by (name, job title, location, birth date).
  Invalid rows are skipped with a per-row reason; the batch continues.`,
	Example: `
  # Import employee master workbook
  minimcu import -i master_karyawan.xlsx --kind master

  # Import check-up results from several files
  minimcu import -i mcu_rig_ab100.xlsx -i mcu_kantor.xlsx --kind checkup

  # Import into an explicit database file
  minimcu import -i master_karyawan.xlsx --kind master --db ./minimcu.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		switch strings.ToLower(strings.TrimSpace(importKind)) {
		case "master":
			result, err := importer.RunMasterImport(importInputs, store)
			if err != nil {
				return err
			}
			fmt.Printf("Master import completed. Rows imported: %d (new: %d, matched: %d), skipped: %d, batch: %s\n",
				result.Inserted,
				result.Created,
				result.Matched,
				result.Skipped,
				result.BatchID,
			)
			for _, skip := range result.SkipLog {
				fmt.Fprintf(os.Stderr, "  row %d skipped: %s\n", skip.Row, skip.Reason)
			}
			return nil
		case "checkup":
			result, err := importer.RunCheckupImport(importInputs, store, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Check-up import completed. Rows inserted: %d, skipped: %d\n",
				result.Inserted,
				len(result.Skipped),
			)
			for _, skip := range result.Skipped {
				fmt.Printf("  row %d skipped: %s\n", skip.Row, skip.Reason)
			}
			return nil
		default:
			return fmt.Errorf("unsupported import kind %q (supported: master, checkup)", importKind)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input workbook path (repeatable)")
	importCmd.Flags().StringVarP(&importKind, "kind", "k", "", "Import kind: master|checkup")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")

	_ = importCmd.MarkFlagRequired("input")
	_ = importCmd.MarkFlagRequired("kind")
}
