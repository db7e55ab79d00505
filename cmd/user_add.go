package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	userAddUsername string
	userAddRole     string
	userAddPassword string
)

var (
	userPromptInput  io.Reader = os.Stdin
	userPromptOutput io.Writer = os.Stdout
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a login account.",
	Example: `
  # Add a manager, password prompted interactively
  minimcu user add --username manager2 --role Manager

  # Add a nurse with the password given on the command line
  minimcu user add --username nurse2 --role "Tenaga Kesehatan" --password s3cret
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userAddPassword
		if strings.TrimSpace(password) == "" {
			prompted, err := promptPassword(userPromptInput, userPromptOutput, userAddUsername)
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

		if err := store.CreateUser(userAddUsername, password, userAddRole); err != nil {
			return err
		}
		fmt.Printf("User created: %s (%s)\n", userAddUsername, userAddRole)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().StringVar(&userAddUsername, "username", "", "Account username")
	userAddCmd.Flags().StringVar(&userAddRole, "role", "", `Account role: Master|Manager|"Tenaga Kesehatan"`)
	userAddCmd.Flags().StringVar(&userAddPassword, "password", "", "Account password (prompted when omitted)")

	_ = userAddCmd.MarkFlagRequired("username")
	_ = userAddCmd.MarkFlagRequired("role")
}

func promptPassword(input io.Reader, output io.Writer, username string) (string, error) {
	if input == nil {
		return "", fmt.Errorf("password prompt input is not available")
	}
	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Password for %s: ", username); err != nil {
		return "", fmt.Errorf("write password prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(line)
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
