package cmd

import "github.com/spf13/cobra"

var userDBPath string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage login accounts (Master administration).",
	Long: `Create, list, delete, and reset passwords of login accounts.

Roles: Master (super-admin), Manager, Tenaga Kesehatan (health worker).
Employees never log in; they are reached through their per-UID view link.`,
	Example: `
  # Add a nurse account
  minimcu user add --username nurse2 --role "Tenaga Kesehatan"

  # List accounts
  minimcu user list

  # Reset a password
  minimcu user reset-password --username manager

  # Delete an account (the last Master cannot be deleted)
  minimcu user delete --username nurse2
`,
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.PersistentFlags().StringVar(&userDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")
}
