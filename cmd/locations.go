package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	locationsAdd    string
	locationsDBPath string
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List and register known site names.",
	Long: `List the registered site names, or add a new one with --add.

Sites from the config "locations" list are seeded automatically; sheet
names seen during master import register themselves as well.`,
	Example: `
  # List registered sites
  minimcu locations

  # Register a new site
  minimcu locations --add "Rig XD-300"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(locationsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if locationsAdd != "" {
			created, err := store.AddLocation(locationsAdd)
			if err != nil {
				return err
			}
			if created {
				fmt.Printf("Location added: %s\n", locationsAdd)
			} else {
				fmt.Printf("Location already registered: %s\n", locationsAdd)
			}
			return nil
		}

		locations, err := store.ListLocations()
		if err != nil {
			return err
		}
		if len(locations) == 0 {
			fmt.Println("No locations registered.")
			return nil
		}
		for _, location := range locations {
			fmt.Println(location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)

	locationsCmd.Flags().StringVar(&locationsAdd, "add", "", "Register this site name")
	locationsCmd.Flags().StringVar(&locationsDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")
}
