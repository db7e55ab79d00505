package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minimcu/medical"
	"minimcu/storage"
)

var (
	checkupsListUID    string
	checkupsListLatest bool
)

var checkupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-up records with their wellness status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(checkupsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		var details []storage.CheckupDetail
		switch {
		case checkupsListUID != "":
			details, err = store.CheckupsByUID(checkupsListUID)
		case checkupsListLatest:
			details, err = store.LatestCheckups()
		default:
			details, err = store.ListCheckups()
		}
		if err != nil {
			return err
		}

		if len(details) == 0 {
			fmt.Println("No check-up records found.")
			return nil
		}

		fmt.Printf("%-6s %-28s %-12s %-7s %-7s %s\n", "ID", "NAME", "DATE", "BMI", "STATUS", "LOCATION")
		for _, detail := range details {
			bmi := ""
			if detail.BMI != nil {
				bmi = fmt.Sprintf("%.2f", *detail.BMI)
			}
			fmt.Printf("%-6d %-28s %-12s %-7s %-7s %s\n",
				detail.ID,
				detail.Name,
				detail.CheckupDate.Format("2006-01-02"),
				bmi,
				medical.Status(detail.Checkup),
				detail.Location,
			)
		}
		fmt.Printf("Total: %d\n", len(details))
		return nil
	},
}

func init() {
	checkupsCmd.AddCommand(checkupsListCmd)

	checkupsListCmd.Flags().StringVar(&checkupsListUID, "uid", "", "Only show records of this employee UID")
	checkupsListCmd.Flags().BoolVar(&checkupsListLatest, "latest", false, "Only show the most recent record per employee")
}
