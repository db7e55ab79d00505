package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minimcu/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minimcu",
	Short: "Import, review, and export employee medical check-up records.",
	Long: `minimcu manages employee medical check-up records.

Managers upload employee master workbooks and check-up result workbooks;
nurses generate entry templates and review results; the Master account
administers login users. All data lives in a local SQLite database.

Supported workbook formats: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  minimcu config create

  # Import employee master data (one sheet per site)
  minimcu import -i master_karyawan.xlsx --kind master

  # Import check-up results
  minimcu import -i checkup_january.xlsx --kind checkup

  # Generate the nurse entry template for one site
  minimcu template --location "Kantor" --output ./template.xlsx

  # Export all check-up data
  minimcu export --output ./medical_checkup_data.xlsx

  # Start the local dashboard
  minimcu serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.minimcu.yaml, then ./.minimcu.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".minimcu" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".minimcu")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: minimcu config create")
	}
}
