package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minimcu/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  minimcu config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		}
		fmt.Println("Configuration:")
		fmt.Printf("database.path: %s\n", cfg.Database.Path)
		fmt.Printf("server.port: %d\n", cfg.Server.Port)
		fmt.Printf("import.upload_dir: %s\n", cfg.Import.UploadDir)
		fmt.Printf("locations: %d\n", len(cfg.Locations))
		for i, location := range cfg.Locations {
			fmt.Printf("locations[%d]: %s\n", i, location)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
