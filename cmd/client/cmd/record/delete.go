package record

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record from the vault",
	Long: `Removes the record with the given content identifier from the local
vault. Deletion is local; the pinned payload stays on the network.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id := args[0]

		if !deleteYes {
			fmt.Printf("Delete record %s? [y/N]: ", id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := app.DeleteRecord(id); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}

		color.Green("✓ Record %s deleted", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "delete without confirmation")
}
