package cmd

import "github.com/spf13/cobra"

var checkupsDBPath string

var checkupsCmd = &cobra.Command{
	Use:   "checkups",
	Short: "List and delete stored check-up records.",
	Example: `
  # Every stored check-up record
  minimcu checkups list

  # Latest record per employee (what the dashboard shows)
  minimcu checkups list --latest

  # One employee's history
  minimcu checkups list --uid 6f1c2a9e-...

  # Delete a mistyped record by id
  minimcu checkups delete --id 42
`,
}

func init() {
	rootCmd.AddCommand(checkupsCmd)

	checkupsCmd.PersistentFlags().StringVar(&checkupsDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")
}
