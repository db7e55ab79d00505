package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userDeleteUsername string

var userDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a login account.",
	Long: `Delete a login account by username.

The last remaining Master account cannot be deleted, so the system
always keeps at least one administrator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(userDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteUser(userDeleteUsername); err != nil {
			return err
		}
		fmt.Printf("User deleted: %s\n", userDeleteUsername)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userDeleteCmd)

	userDeleteCmd.Flags().StringVar(&userDeleteUsername, "username", "", "Account username")

	_ = userDeleteCmd.MarkFlagRequired("username")
}
