package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	userResetUsername string
	userResetPassword string
)

var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for a login account.",
	Example: `
  # New password prompted interactively
  minimcu user reset-password --username manager

  # New password given on the command line
  minimcu user reset-password --username manager --password s3cret
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userResetPassword
		if strings.TrimSpace(password) == "" {
			prompted, err := promptPassword(userPromptInput, userPromptOutput, userResetUsername)
			if err != nil {
				return err
			}
			password = prompted
		}

		store, _, err := openStore(userDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ResetUserPassword(userResetUsername, password); err != nil {
			return err
		}
		fmt.Printf("Password updated for %s\n", userResetUsername)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)

	userResetPasswordCmd.Flags().StringVar(&userResetUsername, "username", "", "Account username")
	userResetPasswordCmd.Flags().StringVar(&userResetPassword, "password", "", "New password (prompted when omitted)")

	_ = userResetPasswordCmd.MarkFlagRequired("username")
}
