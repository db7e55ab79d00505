package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List login accounts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(userDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		users, err := store.ListUsers()
		if err != nil {
			return err
		}

		if len(users) == 0 {
			fmt.Println("No accounts found.")
			return nil
		}

		fmt.Printf("%-24s %-20s %s\n", "USERNAME", "ROLE", "CREATED")
		for _, user := range users {
			created := ""
			if !user.CreatedAt.IsZero() {
				created = user.CreatedAt.Format("2006-01-02")
			}
			fmt.Printf("%-24s %-20s %s\n", user.Username, user.Role, created)
		}
		return nil
	},
}

func init() {
	userCmd.AddCommand(userListCmd)
}
