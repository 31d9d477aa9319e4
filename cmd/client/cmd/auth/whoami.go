package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		u := app.CurrentUser()
		if u == nil {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("%s (%s)", u.ID, u.Role)
		if u.Name != "" {
			fmt.Printf(" - %s", u.Name)
		}
		fmt.Println()
		return nil
	},
}
