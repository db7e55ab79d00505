package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	resetScope  string
	resetDBPath string
)

var (
	resetPromptInput  io.Reader = os.Stdin
	resetPromptOutput io.Writer = os.Stdout
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored records (admin reset)",
	Long: `Destructive database cleanup command.

Scopes:
- checkups:  delete every check-up record, employees stay
- employees: delete every employee (their check-ups cascade)
- all:       both of the above

Before deletion, an interactive security prompt requires typing exactly "Y".`,
	Example: `
  # Delete all check-up records (requires interactive confirmation)
  minimcu reset --scope checkups

  # Full reset of employees and check-ups
  minimcu reset --scope all
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scope := strings.ToLower(strings.TrimSpace(resetScope))
		switch scope {
		case "checkups", "employees", "all":
		default:
			return fmt.Errorf("unsupported reset scope %q (supported: checkups, employees, all)", resetScope)
		}

		confirmed, err := confirmResetPrompt(resetPromptInput, resetPromptOutput, scope)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("reset aborted: confirmation was not 'Y'")
		}

		store, _, err := openStore(resetDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if scope == "checkups" || scope == "all" {
			deleted, err := store.DeleteAllCheckups()
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d check-up records\n", deleted)
		}
		if scope == "employees" || scope == "all" {
			deleted, err := store.DeleteAllEmployees()
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d employee records\n", deleted)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringVar(&resetScope, "scope", "", "Reset scope: checkups|employees|all")
	resetCmd.Flags().StringVar(&resetDBPath, "db", "", "Path to local SQLite database (default: database.path from config)")

	_ = resetCmd.MarkFlagRequired("scope")
}

func confirmResetPrompt(input io.Reader, output io.Writer, scope string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("reset confirmation input is not available")
	}
	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete all records in scope %q? Type Y to confirm: ", scope); err != nil {
		return false, fmt.Errorf("write reset confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line) == "Y", nil
		}
		return false, fmt.Errorf("read reset confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
