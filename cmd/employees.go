package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	employeesLocation string
	employeesDBPath   string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List registered employees.",
	Long: `List employees from the master registry with their stable UIDs.

The UID shown here is the key the check-up importer matches on and the
link target of a printed QR code (/employee/{uid} on the dashboard).`,
	Example: `
  # All employees
  minimcu employees

  # One site only
  minimcu employees --location "Kantor"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(employeesDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		employees, err := store.ListEmployees()
		if err != nil {
			return err
		}

		printed := 0
		for _, employee := range employees {
			if employeesLocation != "" && !strings.EqualFold(employee.Location, employeesLocation) {
				continue
			}
			birth := ""
			if employee.BirthDate != nil {
				birth = employee.BirthDate.Format("2006-01-02")
			}
			if printed == 0 {
				fmt.Printf("%-38s %-28s %-24s %-18s %s\n", "UID", "NAME", "JOB TITLE", "LOCATION", "BIRTH DATE")
			}
			fmt.Printf("%-38s %-28s %-24s %-18s %s\n", employee.UID, employee.Name, employee.JobTitle, employee.Location, birth)
			printed++
		}

		if printed == 0 {
			fmt.Println("No employees found.")
			return nil
		}
		fmt.Printf("Total: %d\n", printed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(employeesCmd)

	employeesCmd.Flags().StringVar(&employeesLocation, "location", "", "Only show employees at this site")
	employeesCmd.Flags().StringVar(&employeesDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")
}
