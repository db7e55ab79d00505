package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkupsDeleteID int64

var checkupsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a single check-up record by id.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(checkupsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.DeleteCheckup(checkupsDeleteID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("no check-up record with id %d", checkupsDeleteID)
		}
		fmt.Printf("Deleted check-up record %d\n", checkupsDeleteID)
		return nil
	},
}

func init() {
	checkupsCmd.AddCommand(checkupsDeleteCmd)

	checkupsDeleteCmd.Flags().Int64Var(&checkupsDeleteID, "id", 0, "Check-up record id")

	_ = checkupsDeleteCmd.MarkFlagRequired("id")
}
