package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage minimcu configuration file values.",
	Long: `Create, edit, and display the minimcu configuration file.

The configuration stores:
- database.path
- server.port
- import.upload_dir
- locations (site names seeded into the registry)`,
	Example: `
  # Create default config in $HOME/.minimcu.yaml
  minimcu config create

  # Show active config and source file
  minimcu config show

  # Open active config in editor (creates example if missing)
  minimcu config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
