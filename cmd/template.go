package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minimcu/output"
)

var (
	templateOutput   string
	templateLocation string
	templateDBPath   string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate the check-up entry template workbook",
	Long: `Generate an Excel template pre-filled with employee identity columns.

Measurement columns are left empty for manual entry; age, BMI, and BMI
category are in-cell formulas so the sheet calculates itself while being
filled in. The result imports cleanly via "minimcu import --kind checkup".`,
	Example: `
  # Template for every employee
  minimcu template --output ./checkup_template.xlsx

  # Template for one site only
  minimcu template --location "Kantor" --output ./checkup_template_kantor.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(templateDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		employees, err := store.ListEmployees()
		if err != nil {
			return err
		}

		if err := output.WriteTemplate(templateOutput, employees, templateLocation); err != nil {
			return err
		}
		fmt.Printf("Template written. Employees: %d, File: %s\n", len(employees), templateOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output file path")
	templateCmd.Flags().StringVar(&templateLocation, "location", "", "Only include employees at this site")
	templateCmd.Flags().StringVar(&templateDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")

	_ = templateCmd.MarkFlagRequired("output")
}
