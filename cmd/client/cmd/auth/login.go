package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"medvault/internal/domain/user"
)

var (
	loginID   string
	loginRole string
	loginName string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Set the current user",
	Long: `Sets the current user for this installation. The user is persisted
locally until logout; role-based access filtering uses it on every vault
operation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		u := &user.User{
			ID:   loginID,
			Role: user.Role(loginRole),
			Name: loginName,
		}

		if err := app.Login(u); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		color.Green("✓ Logged in as %s (%s)", u.ID, u.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginID, "id", "", "user identifier")
	loginCmd.Flags().StringVar(&loginRole, "role", "", "user role: admin, doctor, patient or staff")
	loginCmd.Flags().StringVar(&loginName, "name", "", "display name")
	_ = loginCmd.MarkFlagRequired("id")
	_ = loginCmd.MarkFlagRequired("role")
}
