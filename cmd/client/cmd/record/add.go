package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <ref>",
	Short: "Import a record from the gateway",
	Long: `Fetches a pinned record payload by its content reference and adds it
to the local vault. The reference may carry an ipfs:// prefix or be a bare
CID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ref := args[0]
		if err := app.ImportRecord(cmd.Context(), ref); err != nil {
			return fmt.Errorf("import record: %w", err)
		}

		color.Green("✓ Record %s imported", ref)
		return nil
	},
}
