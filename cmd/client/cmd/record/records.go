package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"medvault/cmd/client/cmd/types"
	"medvault/internal/app/client"
)

// Cmd is the parent command for vault operations.
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Manage the medical record vault",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(deleteCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
