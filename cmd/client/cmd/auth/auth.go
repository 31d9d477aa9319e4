package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"medvault/cmd/client/cmd/types"
	"medvault/internal/app/client"
)

// Cmd is the parent command for session management.
var Cmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the current user session",
}

func init() {
	Cmd.AddCommand(loginCmd)
	Cmd.AddCommand(logoutCmd)
	Cmd.AddCommand(whoamiCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
